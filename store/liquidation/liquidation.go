package liquidation

import (
	"context"

	"morpho/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type liquidationStore struct {
	db *db.DB
}

// New new liquidation store
func New(db *db.DB) core.ILiquidationStore {
	return &liquidationStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Liquidation{})
		if err := tx.AutoMigrate(core.Liquidation{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *liquidationStore) Create(ctx context.Context, tx *db.DB, liquidation *core.Liquidation) error {
	if err := tx.Update().Create(liquidation).Error; err != nil {
		return err
	}
	return nil
}

func (s *liquidationStore) FindByTraceID(ctx context.Context, traceID string) (*core.Liquidation, error) {
	var liquidation core.Liquidation
	err := s.db.View().Where("trace_id=?", traceID).First(&liquidation).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Liquidation{}, nil
		}
		return nil, err
	}

	return &liquidation, nil
}

func (s *liquidationStore) List(ctx context.Context, symbol string, limit int) ([]*core.Liquidation, error) {
	query := s.db.View().Order("id desc")
	if symbol != "" {
		query = query.Where("symbol=?", symbol)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var liquidations []*core.Liquidation
	if err := query.Find(&liquidations).Error; err != nil {
		return nil, err
	}
	return liquidations, nil
}
