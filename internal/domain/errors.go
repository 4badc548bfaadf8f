package domain

import "errors"

var (
	// ErrInvalidState marks an operation called while its precondition does not hold,
	// e.g. resolving an empty trick. It always indicates a defect in the caller.
	ErrInvalidState = errors.New("invalid state")
	// ErrIllegalPlay marks a play of a card that is not in hand or that breaks follow-suit.
	ErrIllegalPlay = errors.New("illegal play")
)
