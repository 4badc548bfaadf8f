package domain

import (
	"fmt"
	"strconv"
)

// Round is the complete state of one Hokm round. It is a plain value aggregate
// with no back-references, so a structural copy is an independent snapshot.
type Round struct {
	ID       string
	Deck     []Card
	Players  [NumSeats]Player
	Hokm     *Suit
	DealerID int
	Tricks   [2]int // indexed by Team
	Played   []Card
	Trick    []Play
	Target   int
}

// NewRound seats four players. humanSeat marks the seat driven from outside
// (0..3), or -1 when every seat is a bot.
func NewRound(humanSeat int) *Round {
	r := &Round{Target: DefaultTargetTricks, DealerID: 1}
	for seat := 0; seat < NumSeats; seat++ {
		name := "P " + strconv.Itoa(seat+1)
		human := seat == humanSeat
		if human {
			name = "You"
		}
		r.Players[seat] = Player{
			ID:      seat + 1,
			Name:    name,
			Team:    TeamForSeat(seat),
			IsHuman: human,
			Hand:    make([]Card, 0, HandSize),
		}
	}
	return r
}

// Reset clears all per-round state and installs a fresh deck and dealer.
func (r *Round) Reset(deck []Card, dealerID int) {
	r.Deck = append(r.Deck[:0], deck...)
	for i := range r.Players {
		r.Players[i].Hand = r.Players[i].Hand[:0]
	}
	r.Hokm = nil
	r.DealerID = dealerID
	r.Tricks = [2]int{}
	r.Played = r.Played[:0]
	r.Trick = r.Trick[:0]
}

// Player returns the player with the given 1-based id.
func (r *Round) Player(id int) (*Player, error) {
	if id < 1 || id > NumSeats {
		return nil, fmt.Errorf("%w: unknown player %d", ErrInvalidState, id)
	}
	return &r.Players[id-1], nil
}

// Dealer returns the current dealer.
func (r *Round) Dealer() *Player {
	return &r.Players[r.DealerID-1]
}

// Human returns the human-driven player, if any.
func (r *Round) Human() (*Player, bool) {
	for i := range r.Players {
		if r.Players[i].IsHuman {
			return &r.Players[i], true
		}
	}
	return nil, false
}

// PartnerID returns the id of the player seated opposite id.
func PartnerID(id int) int {
	return (id+1)%NumSeats + 1
}

// NextID returns the id of the player seated after id.
func NextID(id int) int {
	return id%NumSeats + 1
}

// SetHokm fixes the trump suit. Trump cannot change once set within a round.
func (r *Round) SetHokm(s Suit) error {
	if r.Hokm != nil {
		return fmt.Errorf("%w: hokm already set to %s", ErrInvalidState, *r.Hokm)
	}
	r.Hokm = &s
	return nil
}

// IsTrump reports whether c belongs to the trump suit.
func (r *Round) IsTrump(c Card) bool {
	return r.Hokm != nil && c.Suit == *r.Hokm
}

// Deal moves n cards to each player round-robin from the front of the deck.
func (r *Round) Deal(n int) error {
	if len(r.Deck) < n*NumSeats {
		return fmt.Errorf("%w: deck has %d cards, need %d", ErrInvalidState, len(r.Deck), n*NumSeats)
	}
	for k := 0; k < n; k++ {
		for i := range r.Players {
			r.Players[i].Hand = append(r.Players[i].Hand, r.Deck[0])
			r.Deck = r.Deck[1:]
		}
	}
	return nil
}

// LedSuit returns the suit led in the current trick.
func (r *Round) LedSuit() (Suit, bool) {
	return LedSuit(r.Trick)
}

// LegalPlays returns the cards the player may play now.
func (r *Round) LegalPlays(id int) ([]Card, error) {
	p, err := r.Player(id)
	if err != nil {
		return nil, err
	}
	return LegalPlays(p.Hand, r.Trick), nil
}

// NextToAct returns the seat after the last player in the trick. It reports false
// when the trick is empty, since the leader is decided by the caller.
func (r *Round) NextToAct() (int, bool) {
	if len(r.Trick) == 0 || len(r.Trick) == NumSeats {
		return 0, false
	}
	return NextID(r.Trick[len(r.Trick)-1].PlayerID), true
}

// PlayCard appends the play to the trick and removes the card from the player's hand.
// The round is left untouched when the play is rejected.
func (r *Round) PlayCard(id int, card Card) error {
	p, err := r.Player(id)
	if err != nil {
		return err
	}
	if len(r.Trick) >= NumSeats {
		return fmt.Errorf("%w: trick already complete", ErrInvalidState)
	}
	for _, pl := range r.Trick {
		if pl.PlayerID == id {
			return fmt.Errorf("%w: player %d already played this trick", ErrInvalidState, id)
		}
	}
	if err := CheckPlay(p.Hand, r.Trick, card); err != nil {
		return err
	}
	p.Hand, _ = RemoveCard(p.Hand, card)
	r.Trick = append(r.Trick, Play{PlayerID: id, Card: card})
	return nil
}

// TrickWinnerPreview names the current leader of the (possibly partial) trick
// without changing any state.
func (r *Round) TrickWinnerPreview() (int, error) {
	return TrickWinner(r.Trick, r.Hokm)
}

// ResolveTrick awards the complete trick to its winner, moves its cards into the
// played history and returns the winner's id.
func (r *Round) ResolveTrick() (int, error) {
	if len(r.Trick) != NumSeats {
		return 0, fmt.Errorf("%w: trick has %d of %d cards", ErrInvalidState, len(r.Trick), NumSeats)
	}
	winner, err := r.TrickWinnerPreview()
	if err != nil {
		return 0, err
	}
	for _, p := range r.Trick {
		r.Played = append(r.Played, p.Card)
	}
	r.Trick = r.Trick[:0]
	r.Tricks[r.Players[winner-1].Team]++
	return winner, nil
}

// TricksPlayed returns the number of tricks resolved so far.
func (r *Round) TricksPlayed() int {
	return r.Tricks[TeamA] + r.Tricks[TeamB]
}

// Winner returns the team that reached the target, if any.
func (r *Round) Winner() (Team, bool) {
	switch {
	case r.Tricks[TeamA] >= r.Target:
		return TeamA, true
	case r.Tricks[TeamB] >= r.Target:
		return TeamB, true
	}
	return TeamA, false
}

// Done reports whether the round is over.
func (r *Round) Done() bool {
	_, ok := r.Winner()
	return ok
}

// Cards lists every card the round currently accounts for: deck, hands, played
// history and the trick in progress.
func (r *Round) Cards() []Card {
	out := make([]Card, 0, DeckSize)
	out = append(out, r.Deck...)
	for i := range r.Players {
		out = append(out, r.Players[i].Hand...)
	}
	out = append(out, r.Played...)
	for _, p := range r.Trick {
		out = append(out, p.Card)
	}
	return out
}

// Clone returns a deep copy of the round.
func (r *Round) Clone() *Round {
	c := &Round{}
	r.CopyInto(c)
	return c
}

// CopyInto overwrites dst with a deep copy of r, reusing dst's slice capacity.
func (r *Round) CopyInto(dst *Round) {
	dst.ID = r.ID
	dst.Deck = append(dst.Deck[:0], r.Deck...)
	for i := range r.Players {
		hand := dst.Players[i].Hand
		dst.Players[i] = r.Players[i]
		dst.Players[i].Hand = append(hand[:0], r.Players[i].Hand...)
	}
	if r.Hokm != nil {
		s := *r.Hokm
		dst.Hokm = &s
	} else {
		dst.Hokm = nil
	}
	dst.DealerID = r.DealerID
	dst.Tricks = r.Tricks
	dst.Played = append(dst.Played[:0], r.Played...)
	dst.Trick = append(dst.Trick[:0], r.Trick...)
	dst.Target = r.Target
}
