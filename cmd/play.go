package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/render"
	"github.com/arcanaland/klondike/internal/session"
	"github.com/arcanaland/klondike/internal/solitaire"
)

const playHelp = `Commands:
  d          draw, or turn the talon over
  t <card>   tap a face-up card (e.g. t 7s)
  <card>     same as t <card>
  n          new game
  s          show the board
  q          save and quit`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively with a running clock",
	Long:  "Play reads one command per line while the game clock runs.\n\n" + playHelp,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, st, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		p := &player{
			session:  s,
			out:      cmd.OutOrStdout(),
			renderer: render.New(cmd.OutOrStdout(), cfg.Theme),
		}
		return p.run(ctx, readLines(ctx, cmd.InOrStdin()))
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
}

// readLines feeds r line by line until it ends or ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

type player struct {
	session  *session.Session
	out      io.Writer
	renderer *render.Renderer
}

// run owns the session: ticks and commands are handled on this goroutine
// only. The game is saved on every way out.
func (p *player) run(ctx context.Context, lines <-chan string) error {
	defer p.session.Suspend(context.WithoutCancel(ctx))

	p.session.Resume()
	p.show()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return nil
		case <-p.session.Ticks():
			p.session.HandleTick()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := p.handle(strings.TrimSpace(line)); quit {
				return nil
			}
		}
	}
}

func (p *player) handle(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		p.prompt()
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "q", "quit":
		return true
	case "h", "help", "?":
		fmt.Fprintln(p.out, playHelp)
		p.prompt()
		return false
	case "s", "show":
	case "n", "new":
		p.session.NewGame()
	case "d", "draw":
		if p.session.DrawOrRecycle() == solitaire.Nothing {
			fmt.Fprintln(p.out, "Nothing left to draw.")
		}
	case "t", "tap":
		if len(fields) != 2 {
			fmt.Fprintln(p.out, "Usage: t <card>")
			p.prompt()
			return false
		}
		p.tap(fields[1])
	default:
		p.tap(fields[0])
	}
	p.show()
	return false
}

func (p *player) tap(code string) {
	moved, err := p.session.TapCode(code)
	switch {
	case err != nil:
		fmt.Fprintln(p.out, err)
	case !moved:
		fmt.Fprintf(p.out, "No move for %s.\n", code)
	}
}

func (p *player) show() {
	fmt.Fprintln(p.out)
	if err := p.renderer.Board(p.session.Game()); err != nil {
		fmt.Fprintln(p.out, err)
	}
	if p.session.IsComplete() {
		fmt.Fprintln(p.out, "\nComplete! Type n for a new game or q to quit.")
	}
	p.prompt()
}

func (p *player) prompt() {
	fmt.Fprint(p.out, "> ")
}
