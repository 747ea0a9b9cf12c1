package block

import (
	"context"
	"time"

	"morpho/core"
	"morpho/internal/oracle"
)

type service struct {
	genesis      int64
	slotDuration time.Duration
}

// New new block service
func New(cfg *core.Config) core.IBlockService {
	slotDuration := oracle.DefaultSlotDuration
	if cfg.App.SlotDurationMS > 0 {
		slotDuration = time.Duration(cfg.App.SlotDurationMS) * time.Millisecond
	}

	return &service{
		genesis:      cfg.App.Genesis,
		slotDuration: slotDuration,
	}
}

func (s *service) CurrentSlot(ctx context.Context, t time.Time) (uint64, error) {
	return oracle.CurrentSlot(s.genesis, s.slotDuration, t)
}
