package render

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/klondike/internal/config"
)

type painter func(string) string

type palette struct {
	red, black, back, muted, label painter
}

// hexPalette lists a theme's colors as hex triplets.
type hexPalette struct {
	Red, Black, Back, Label string
}

var hexPalettes = map[config.Theme]hexPalette{
	config.ThemeDark: {
		Red:   "#ff6b6b",
		Black: "#e6e6e6",
		Back:  "#5f87d7",
		Label: "#5fd7d7",
	},
	config.ThemeLight: {
		Red:   "#c0392b",
		Black: "#1c1c1c",
		Back:  "#2e5c8a",
		Label: "#00707a",
	},
}

func paletteFor(theme config.Theme) palette {
	hp, ok := hexPalettes[theme]
	if !ok {
		return systemPalette()
	}
	red, black, back, label := mustHex(hp.Red), mustHex(hp.Black), mustHex(hp.Back), mustHex(hp.Label)
	return palette{
		red:   truecolor(red),
		black: truecolor(black),
		back:  truecolor(back),
		muted: truecolor(black.BlendLab(back, 0.6)),
		label: truecolor(label),
	}
}

// systemPalette leaves the exact shades to the terminal's own scheme.
func systemPalette() palette {
	sprint := func(attrs ...colorize.Attribute) painter {
		c := colorize.New(attrs...)
		return func(s string) string { return c.Sprint(s) }
	}
	return palette{
		red:   sprint(colorize.FgHiRed),
		black: sprint(colorize.FgHiWhite),
		back:  sprint(colorize.FgBlue),
		muted: sprint(colorize.Faint),
		label: sprint(colorize.FgCyan),
	}
}

func truecolor(c colorful.Color) painter {
	r, g, b := c.RGB255()
	return func(s string) string {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("bad palette color %q: %v", s, err))
	}
	return c
}
