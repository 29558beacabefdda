// Package render draws a game board as colored terminal text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/solitaire"
)

const (
	// cellWidth is the visible width of one card, "[10♥]".
	cellWidth = 5
	// WideWidth is the narrowest terminal that gets the one-row header.
	WideWidth = 60

	defaultWidth = 80
)

// Renderer writes boards to Out.
type Renderer struct {
	Out   io.Writer
	Width int
	Plain bool // no escape codes at all
	paint palette
}

// New returns a renderer for w in the given theme. Width comes from the
// terminal when w is one.
func New(w io.Writer, theme config.Theme) *Renderer {
	return &Renderer{
		Out:   w,
		Width: terminalWidth(w),
		Plain: colorize.NoColor,
		paint: paletteFor(theme),
	}
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Board draws the whole table: status line, foundations, stock and talon,
// then the tableau columns.
func (r *Renderer) Board(g *solitaire.Game) error {
	var b strings.Builder

	b.WriteString(r.color(r.paint.label, "Score: "))
	fmt.Fprintf(&b, "%-6d", g.Score())
	b.WriteString(r.color(r.paint.label, "Time: "))
	b.WriteString(g.ElapsedDisplay())
	b.WriteString(r.color(r.paint.label, "  Stock: "))
	fmt.Fprintf(&b, "%d\n\n", len(g.Stock()))

	foundations := make([]string, 0, len(card.Suits))
	for _, suit := range card.Suits {
		foundations = append(foundations, r.foundationCell(suit, g.Foundation(suit)))
	}
	piles := []string{r.talonCell(g.Talon()), r.stockCell(g.Stock())}

	if r.Width >= WideWidth {
		gap := deck.Columns - len(foundations) - len(piles)
		row := append(foundations, blanks(gap)...)
		row = append(row, piles...)
		writeRow(&b, row)
	} else {
		writeRow(&b, foundations)
		writeRow(&b, piles)
	}
	b.WriteString("\n")

	columns := make([][]card.Card, deck.Columns)
	depth := 0
	for i := range columns {
		columns[i] = g.Column(i)
		depth = max(depth, len(columns[i]))
	}
	for row := 0; row < max(depth, 1); row++ {
		cells := make([]string, deck.Columns)
		for i, column := range columns {
			switch {
			case row < len(column):
				cells[i] = r.cardCell(column[row])
			case row == 0:
				cells[i] = r.emptyCell("")
			default:
				cells[i] = strings.Repeat(" ", cellWidth)
			}
		}
		writeRow(&b, cells)
	}

	_, err := io.WriteString(r.Out, b.String())
	return err
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
	b.WriteString("\n")
}

func blanks(n int) []string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = strings.Repeat(" ", cellWidth)
	}
	return cells
}

func (r *Renderer) cardCell(c card.Card) string {
	if !c.FaceUp {
		return r.color(r.paint.back, pad("[##]"))
	}
	text := pad(fmt.Sprintf("[%s%s]", c.Rank, c.Suit.Symbol()))
	if c.Suit.Color() == card.Red {
		return r.color(r.paint.red, text)
	}
	return r.color(r.paint.black, text)
}

func (r *Renderer) emptyCell(mark string) string {
	return r.color(r.paint.muted, pad(fmt.Sprintf("[%2s]", mark)))
}

func (r *Renderer) foundationCell(suit card.Suit, cards []card.Card) string {
	if len(cards) == 0 {
		return r.emptyCell(suit.Symbol())
	}
	return r.cardCell(cards[len(cards)-1])
}

func (r *Renderer) talonCell(cards []card.Card) string {
	if len(cards) == 0 {
		return r.emptyCell("")
	}
	return r.cardCell(cards[len(cards)-1])
}

func (r *Renderer) stockCell(cards []card.Card) string {
	if len(cards) == 0 {
		return r.emptyCell("↺")
	}
	return r.color(r.paint.back, pad("[##]"))
}

// pad right-fills s to cellWidth visible runes.
func pad(s string) string {
	if n := utf8.RuneCountInString(s); n < cellWidth {
		return s + strings.Repeat(" ", cellWidth-n)
	}
	return s
}

func (r *Renderer) color(p painter, s string) string {
	if r.Plain || p == nil {
		return s
	}
	return p(s)
}
