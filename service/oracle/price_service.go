package oracle

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"morpho/core"
	oracleutil "morpho/internal/oracle"
	"morpho/pkg/number"
	"morpho/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
)

// PriceService price service
type PriceService struct {
	Config       *core.Config
	OracleStore  core.IOracleAccountStore
	BlockService core.IBlockService
}

// New new oracle price service
func New(config *core.Config, oracleStr core.IOracleAccountStore, blockSrv core.IBlockService) core.IPriceOracleService {
	return &PriceService{
		Config:       config,
		OracleStore:  oracleStr,
		BlockService: blockSrv,
	}
}

// ResolvePrice validated price for a market from its latest oracle snapshot
func (s *PriceService) ResolvePrice(ctx context.Context, market *core.Market) (number.Uint, error) {
	account, err := s.OracleStore.Find(ctx, market.Oracle)
	if err != nil {
		return number.Uint{}, err
	}

	slot, err := s.BlockService.CurrentSlot(ctx, time.Now())
	if err != nil {
		return number.Uint{}, err
	}

	risk := s.Config.Risk
	return oracleutil.ResolvePrice(account, market, slot, &risk)
}

// PullFeedSnapshot fetch fresh oracle account bytes from the feed provider
func (s *PriceService) PullFeedSnapshot(ctx context.Context, oracleID string) (*core.OracleAccount, error) {
	url := fmt.Sprintf("%s/api/accounts/%s", s.Config.PriceOracle.EndPoint, oracleID)
	logger.FromContext(ctx).Debugln("pull oracle account:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return nil, err
	}

	var body struct {
		Data string `json:"data"`
		Slot uint64 `json:"slot"`
	}
	if err := resthttp.ParseResponse(resp, &body); err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(body.Data)
	if err != nil {
		return nil, core.ErrOracleInvalidReturnData
	}

	return &core.OracleAccount{
		OracleID: oracleID,
		Data:     raw,
		Slot:     body.Slot,
	}, nil
}
