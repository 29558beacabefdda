package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// AppName names the config and data directories.
const AppName = "klondike"

// Theme represents the board color scheme
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// Themes lists every accepted theme in display order
var Themes = []Theme{ThemeSystem, ThemeLight, ThemeDark}

// ParseTheme validates a theme name
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Themes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q (want system, light or dark)", s)
}

// Config represents the application configuration
type Config struct {
	Theme       Theme  `toml:"theme"`
	Store       string `toml:"store"`
	RedisAddr   string `toml:"redis_addr"`
	RedisPrefix string `toml:"redis_prefix"`
	LogLevel    string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Theme:       ThemeSystem,
		Store:       "file",
		RedisAddr:   "localhost:6379",
		RedisPrefix: "klondike:",
		LogLevel:    "warn",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDataDir returns the directory saved games live in
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), AppName)
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), AppName, "config.toml")
}

// LoadEnv reads a .env file from the working directory if there is one.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not read .env")
	}
}

// LoadConfig loads the config file and applies environment overrides
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}
	config.applyEnv()
	return config, nil
}

func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if _, err := ParseTheme(string(config.Theme)); err != nil {
		return nil, fmt.Errorf("error in config file: %v", err)
	}
	return config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("KLONDIKE_STORE"); v != "" {
		c.Store = v
	}
	if v := os.Getenv("KLONDIKE_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("KLONDIKE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("KLONDIKE_THEME"); v != "" {
		if t, err := ParseTheme(v); err == nil {
			c.Theme = t
		} else {
			logrus.WithError(err).Warn("ignoring KLONDIKE_THEME")
		}
	}
}

// Level returns the configured log level, falling back to warn
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}
	return nil
}

// GetTheme returns the theme from config
func GetTheme() (Theme, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.Theme, nil
}

// SetTheme sets the theme in the config file. Environment overrides are
// not written back.
func SetTheme(theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	config, err := loadFile()
	if err != nil {
		return err
	}
	config.Theme = theme
	return writeConfig(config)
}
