package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/clock"
	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/render"
	"github.com/arcanaland/klondike/internal/session"
	"github.com/arcanaland/klondike/internal/store"
)

var (
	cfg       *config.Config
	storeFlag string
	ephemeral bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "klondike",
	Short: "Draw-one Klondike solitaire for the terminal",
	Long: `Klondike is a terminal solitaire game. Every command works on the saved
game, so you can play one move at a time from the shell or sit down with
'klondike play' for an interactive session with a running clock.

Cards are named by rank and suit letter: 7s, 10h, Kd, Ac.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		c, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = c

		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		logrus.SetLevel(cfg.Level())
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Storage backend: file, sqlite, redis or memory")
	RootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the game in memory only")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// openStore opens the backend chosen by flags, environment and config, in
// that order of preference.
func openStore(ctx context.Context) (store.Store, error) {
	backend := cfg.Store
	if storeFlag != "" {
		backend = storeFlag
	}
	if ephemeral {
		backend = string(store.BackendMemory)
	}
	b, err := store.ParseBackend(backend)
	if err != nil {
		return nil, err
	}

	logrus.WithField("backend", b).Debug("opening store")
	return store.Open(ctx, store.Options{
		Backend:     b,
		DataDir:     config.GetDataDir(),
		RedisAddr:   cfg.RedisAddr,
		RedisPrefix: cfg.RedisPrefix,
	})
}

// openSession opens the store and restores the saved game into a new
// session. Without a usable save the fresh deal is saved at once, so the
// next command plays the same table. The caller closes the returned store.
func openSession(ctx context.Context) (*session.Session, store.Store, error) {
	st, err := openStore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening store: %v", err)
	}
	s := session.New(st, clock.Real{}, nil, logrus.StandardLogger())
	if !s.Restore(ctx) {
		if err := s.Save(ctx); err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("error saving new game: %v", err)
		}
	}
	return s, st, nil
}

// step runs one intent against the saved game, saves it and shows the
// board.
func step(cmd *cobra.Command, intent func(s *session.Session) error) error {
	ctx := cmd.Context()
	s, st, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := intent(s); err != nil {
		return err
	}
	if err := s.Save(ctx); err != nil {
		return fmt.Errorf("error saving game: %v", err)
	}
	return showBoard(cmd, s)
}

func showBoard(cmd *cobra.Command, s *session.Session) error {
	out := cmd.OutOrStdout()
	if err := render.New(out, cfg.Theme).Board(s.Game()); err != nil {
		return err
	}
	if s.IsComplete() {
		fmt.Fprintln(out, "\nComplete!")
	}
	return nil
}
