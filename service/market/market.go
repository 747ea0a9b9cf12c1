package market

import (
	"context"
	"time"

	"morpho/core"
	"morpho/internal/oracle"
	"morpho/pkg/morpho"

	"github.com/fox-one/pkg/store/db"
)

type service struct {
	config       *core.Config
	marketStore  core.IMarketStore
	blockService core.IBlockService
}

// New new market service
func New(cfg *core.Config, marketStr core.IMarketStore, blockSrv core.IBlockService) core.IMarketService {
	return &service{
		config:       cfg,
		marketStore:  marketStr,
		blockService: blockSrv,
	}
}

// AccrueInterest advance the market's interest to the slot at t and persist it
func (s *service) AccrueInterest(ctx context.Context, tx *db.DB, market *core.Market, t time.Time) error {
	slot, err := s.blockService.CurrentSlot(ctx, t)
	if err != nil {
		return err
	}

	if slot <= market.BlockNumber {
		return nil
	}

	if err := morpho.AccrueInterest(market, slot, s.slotDuration()); err != nil {
		return err
	}

	return s.marketStore.Update(ctx, tx, market)
}

func (s *service) slotDuration() time.Duration {
	if s.config.App.SlotDurationMS > 0 {
		return time.Duration(s.config.App.SlotDurationMS) * time.Millisecond
	}
	return oracle.DefaultSlotDuration
}
