package oracle

import (
	"errors"
	"time"
)

// DefaultSlotDuration assumed tick rate of the host chain
const DefaultSlotDuration = 400 * time.Millisecond

// CurrentSlot slot count since genesis at the given time
func CurrentSlot(genesis int64, slotDuration time.Duration, t time.Time) (uint64, error) {
	if slotDuration <= 0 {
		return 0, errors.New("slot duration should not be less than or equal zero")
	}

	elapsed := t.UTC().UnixMilli() - genesis*1000
	if elapsed <= 0 {
		return 0, errors.New("invalid slot")
	}

	return uint64(elapsed / slotDuration.Milliseconds()), nil
}
