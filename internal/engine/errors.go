package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount rejects negative XP awards before any snapshot or
// mutation happens.
var ErrInvalidAmount = errors.New("xp amount must be non-negative")

// QuestNotFoundError is returned when a quest id does not exist in the given
// cadence collection.
type QuestNotFoundError struct {
	Cadence Cadence
	ID      string
}

func (e QuestNotFoundError) Error() string {
	return fmt.Sprintf("no %s quest with id %q", e.Cadence, e.ID)
}
