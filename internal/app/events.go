package app

import "hokm/internal/domain"

// EventKind identifies emitted round events.
type EventKind string

const (
	EventRoundReset    EventKind = "round_reset"
	EventHandDealt     EventKind = "hand_dealt"
	EventHokmSelected  EventKind = "hokm_selected"
	EventCardPlayed    EventKind = "card_played"
	EventTrickResolved EventKind = "trick_resolved"
	EventRoundEnded    EventKind = "round_ended"
)

// Event is a round event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	RoundID    string
	Payload    any
	Recipients []int // player ids; empty means everyone
}

type RoundResetPayload struct {
	DealerID int
}

type HandDealtPayload struct {
	PlayerID int
	Hand     []domain.Card
}

type HokmSelectedPayload struct {
	DealerID int
	Suit     domain.Suit
}

type CardPlayedPayload struct {
	PlayerID int
	Card     domain.Card
}

type TrickResolvedPayload struct {
	WinnerID int
	Cards    []domain.Play
	Tricks   [2]int
}

type RoundEndedPayload struct {
	Winner domain.Team
	Tricks [2]int
}
