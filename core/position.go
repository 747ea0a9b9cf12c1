package core

import (
	"context"
	"time"

	"morpho/pkg/number"

	"github.com/fox-one/pkg/store/db"
)

// Position a user's collateral and debt in one market. A position with
// zero borrow shares has no debt and is never liquidatable.
type Position struct {
	ID           uint64      `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID       string      `sql:"size:36;unique_index:user_symbol_idx" json:"user_id"`
	Symbol       string      `sql:"size:20;unique_index:user_symbol_idx" json:"symbol"`
	Collateral   number.Uint `sql:"type:varchar(80)" json:"collateral"`
	BorrowShares number.Uint `sql:"type:varchar(80)" json:"borrow_shares"`
	Version      int64       `sql:"default:0" json:"version"`
	CreatedAt    time.Time   `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time   `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPositionStore position store interface
type IPositionStore interface {
	Save(ctx context.Context, tx *db.DB, position *Position) error
	Find(ctx context.Context, userID, symbol string) (*Position, error)
	ListBySymbol(ctx context.Context, symbol string) ([]*Position, error)
	Update(ctx context.Context, tx *db.DB, position *Position) error
}
