package core

import (
	"context"
	"time"

	"morpho/pkg/number"

	"github.com/fox-one/pkg/store/db"
)

// Market lending market info. Borrow and supply totals are wide-integer
// pool aggregates; the desired steady state is total_borrow_assets <=
// total_supply_assets, restored by bad-debt socialization when violated.
type Market struct {
	ID                uint64      `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Symbol            string      `sql:"size:20;unique_index:symbol_idx" json:"symbol"`
	LoanAssetID       string      `sql:"size:36" json:"loan_asset_id"`
	CollateralAssetID string      `sql:"size:36" json:"collateral_asset_id"`
	// Oracle identifier of the authoritative price account for this market
	Oracle            string      `sql:"size:64" json:"oracle"`
	// Lltv liquidation loan-to-value threshold in basis points, [0, 10000)
	Lltv              uint64      `sql:"default:0" json:"lltv"`
	TotalSupplyAssets number.Uint `sql:"type:varchar(80)" json:"total_supply_assets"`
	TotalSupplyShares number.Uint `sql:"type:varchar(80)" json:"total_supply_shares"`
	TotalBorrowAssets number.Uint `sql:"type:varchar(80)" json:"total_borrow_assets"`
	TotalBorrowShares number.Uint `sql:"type:varchar(80)" json:"total_borrow_shares"`
	// interest model, WAD rates per year
	BaseRate       number.Uint `sql:"type:varchar(80)" json:"base_rate"`
	Multiplier     number.Uint `sql:"type:varchar(80)" json:"multiplier"`
	JumpMultiplier number.Uint `sql:"type:varchar(80)" json:"jump_multiplier"`
	Kink           number.Uint `sql:"type:varchar(80)" json:"kink"`
	// BlockNumber slot of the last interest accrual
	BlockNumber uint64    `sql:"default:0" json:"block_number"`
	Version     int64     `sql:"default:0" json:"version"`
	CreatedAt   time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IMarketStore market store interface
type IMarketStore interface {
	Save(ctx context.Context, tx *db.DB, market *Market) error
	Find(ctx context.Context, symbol string) (*Market, error)
	All(ctx context.Context) ([]*Market, error)
	Update(ctx context.Context, tx *db.DB, market *Market) error
}

// IMarketService market interface
type IMarketService interface {
	AccrueInterest(ctx context.Context, tx *db.DB, market *Market, t time.Time) error
}

// IBlockService slot clock interface
type IBlockService interface {
	CurrentSlot(ctx context.Context, t time.Time) (uint64, error)
}
