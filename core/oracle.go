package core

import (
	"context"
	"time"

	"morpho/pkg/number"

	"github.com/fox-one/pkg/store/db"
)

// OracleAccount raw price-account bytes fetched from the feed provider.
// Data is opaque to everything except the oracle gateway; Slot records
// the slot the snapshot was taken at.
type OracleAccount struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	OracleID  string    `sql:"size:64;unique_index:oracle_idx" json:"oracle_id"`
	Data      []byte    `sql:"type:blob" json:"data"`
	Slot      uint64    `sql:"default:0" json:"slot"`
	Version   int64     `sql:"default:0" json:"version"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IOracleAccountStore oracle account store interface
type IOracleAccountStore interface {
	Save(ctx context.Context, tx *db.DB, account *OracleAccount) error
	Find(ctx context.Context, oracleID string) (*OracleAccount, error)
}

// IPriceOracleService oracle price service interface
type IPriceOracleService interface {
	// ResolvePrice validated collateral-per-loan price at the 1e36 scale
	ResolvePrice(ctx context.Context, market *Market) (number.Uint, error)
	// PullFeedSnapshot fetch fresh account bytes from the feed provider
	PullFeedSnapshot(ctx context.Context, oracleID string) (*OracleAccount, error)
}
