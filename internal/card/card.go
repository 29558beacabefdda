package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ID is the stable identity of a card. Two cards are the same card only if
// their IDs match, regardless of rank and suit.
type ID = uuid.UUID

// Color of a suit
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suit represents one of the four French suits
type Suit int

const (
	Spade Suit = iota
	Club
	Diamond
	Heart
)

// Suits lists every suit in enumeration order.
var Suits = [4]Suit{Spade, Club, Diamond, Heart}

// Color returns black for spades and clubs, red for diamonds and hearts.
func (s Suit) Color() Color {
	switch s {
	case Diamond, Heart:
		return Red
	default:
		return Black
	}
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "spade"
	case Club:
		return "club"
	case Diamond:
		return "diamond"
	case Heart:
		return "heart"
	default:
		return "unknown"
	}
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spade:
		return "♠"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	default:
		return "•"
	}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spade && s <= Heart
}

// ParseSuit parses a suit name ("heart") or its one-letter code ("h").
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "spade", "spades", "s":
		return Spade, nil
	case "club", "clubs", "c":
		return Club, nil
	case "diamond", "diamonds", "d":
		return Diamond, nil
	case "heart", "hearts", "h":
		return Heart, nil
	}
	return 0, fmt.Errorf("unknown suit: %q", s)
}

// Rank is the face value of a card, Ace=1 through King=13
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Valid reports whether r is between Ace and King.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Name returns the english name of the rank
func (r Rank) Name() string {
	names := [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King"}
	if !r.Valid() {
		return fmt.Sprintf("Rank %d", int(r))
	}
	return names[r]
}

// ParseRank parses a rank code such as "A", "7", "10" or "Q". The ace is
// only ever "A".
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == int(Ace) || !Rank(n).Valid() {
		return 0, fmt.Errorf("unknown rank: %q", s)
	}
	return Rank(n), nil
}

// Card represents a playing card. ID, Rank and Suit never change once the
// card exists; FaceUp is flipped as the card moves around the table.
type Card struct {
	ID     ID
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// New creates a face-down card with a fresh identity.
func New(rank Rank, suit Suit) Card {
	return Card{ID: uuid.New(), Rank: rank, Suit: suit}
}

// Is reports whether c and other are the same physical card.
func (c Card) Is(other Card) bool {
	return c.ID == other.ID
}

// Code returns the short code used on the command line, e.g. "10h" or "Ks".
func (c Card) Code() string {
	return c.Rank.String() + strings.ToLower(c.Suit.String()[:1])
}

// Name returns the long english name, e.g. "Seven of Spades".
func (c Card) Name() string {
	suit := c.Suit.String()
	return fmt.Sprintf("%s of %ss", c.Rank.Name(), strings.ToUpper(suit[:1])+suit[1:])
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Parse parses a short card code ("7s", "10h", "Qd") into its rank and suit.
func Parse(code string) (Rank, Suit, error) {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return 0, 0, fmt.Errorf("invalid card code: %q", code)
	}
	rank, err := ParseRank(code[:len(code)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid card code %q: %v", code, err)
	}
	suit, err := ParseSuit(code[len(code)-1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid card code %q: %v", code, err)
	}
	return rank, suit, nil
}
