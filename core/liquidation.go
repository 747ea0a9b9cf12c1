package core

import (
	"context"
	"time"

	"morpho/pkg/number"

	"github.com/fox-one/pkg/store/db"
)

// Liquidation settlement record of one liquidation
type Liquidation struct {
	ID               uint64      `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID          string      `sql:"size:36;unique_index:trace_idx" json:"trace_id"`
	Liquidator       string      `sql:"size:36" json:"liquidator"`
	UserID           string      `sql:"size:36" json:"user_id"`
	Symbol           string      `sql:"size:20" json:"symbol"`
	RepaidAssets     number.Uint `sql:"type:varchar(80)" json:"repaid_assets"`
	RepaidShares     number.Uint `sql:"type:varchar(80)" json:"repaid_shares"`
	SeizedCollateral number.Uint `sql:"type:varchar(80)" json:"seized_collateral"`
	BadDebt          number.Uint `sql:"type:varchar(80)" json:"bad_debt"`
	Price            number.Uint `sql:"type:varchar(80)" json:"price"`
	Lif              uint64      `sql:"default:0" json:"lif"`
	CreatedAt        time.Time   `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// ILiquidationStore liquidation store interface
type ILiquidationStore interface {
	Create(ctx context.Context, tx *db.DB, liquidation *Liquidation) error
	FindByTraceID(ctx context.Context, traceID string) (*Liquidation, error)
	List(ctx context.Context, symbol string, limit int) ([]*Liquidation, error)
}

// ILiquidationService liquidation service interface
type ILiquidationService interface {
	Liquidate(ctx context.Context, liquidator, userID, symbol string, repayAssets number.Uint) (*Liquidation, error)
}
