package domain

import (
	"fmt"
	"strconv"
)

// Suit is one of the four card suits. Suits have no order except equality.
type Suit int

const (
	Heart Suit = iota
	Spade
	Diamond
	Club
)

// AllSuits lists the suits in enumeration order. Trump selection breaks ties by this order.
var AllSuits = [4]Suit{Heart, Spade, Diamond, Club}

func (s Suit) String() string {
	switch s {
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the lowercase suit name used in config and reports.
func (s Suit) Name() string {
	switch s {
	case Heart:
		return "heart"
	case Spade:
		return "spade"
	case Diamond:
		return "diamond"
	case Club:
		return "club"
	default:
		return "unknown"
	}
}

// ParseSuit converts a suit name back into a Suit.
func ParseSuit(name string) (Suit, error) {
	for _, s := range AllSuits {
		if s.Name() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// Rank is a card rank from Two (2) to Ace (14).
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is an immutable playing card. Equality is by rank and suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value maps the rank to its strength. The scale is non-linear:
// A=16, K=14, Q=11.5, J=10 and a numeric rank r is r/2+4.
func (c Card) Value() float64 {
	switch c.Rank {
	case Ace:
		return 16
	case King:
		return 14
	case Queen:
		return 11.5
	case Jack:
		return 10
	default:
		return float64(c.Rank)/2 + 4
	}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Team identifies one of the two partnerships.
type Team int

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	if t == TeamA {
		return "A"
	}
	return "B"
}

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// TeamForSeat maps a 0-based seat to its team. Opposite seats are partners.
func TeamForSeat(seat int) Team {
	if seat%2 == 0 {
		return TeamA
	}
	return TeamB
}

// Player holds a seat's identity and its private hand.
type Player struct {
	ID      int // 1-based, seat+1
	Name    string
	Team    Team
	IsHuman bool
	Hand    []Card
}

// Seat returns the 0-based seat index.
func (p *Player) Seat() int {
	return p.ID - 1
}

// Play is a single (player, card) entry of the trick in progress.
type Play struct {
	PlayerID int
	Card     Card
}
