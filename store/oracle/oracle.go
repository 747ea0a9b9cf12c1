package oracle

import (
	"context"
	"errors"

	"morpho/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type oracleAccountStore struct {
	db *db.DB
}

// New new oracle account store
func New(db *db.DB) core.IOracleAccountStore {
	return &oracleAccountStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.OracleAccount{})
		if err := tx.AutoMigrate(core.OracleAccount{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Save insert or refresh the snapshot for an oracle id
func (s *oracleAccountStore) Save(ctx context.Context, tx *db.DB, account *core.OracleAccount) error {
	var existing core.OracleAccount
	err := tx.Update().Where("oracle_id=?", account.OracleID).First(&existing).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return tx.Update().Create(account).Error
		}
		return err
	}

	// never roll a snapshot backwards
	if account.Slot < existing.Slot {
		return nil
	}

	version := existing.Version
	account.ID = existing.ID
	account.Version = existing.Version + 1
	return tx.Update().Model(core.OracleAccount{}).Where("oracle_id=? and version=?", account.OracleID, version).Update(account).Error
}

func (s *oracleAccountStore) Find(ctx context.Context, oracleID string) (*core.OracleAccount, error) {
	if oracleID == "" {
		return nil, errors.New("invalid oracle_id")
	}

	var account core.OracleAccount
	if err := s.db.View().Where("oracle_id=?", oracleID).First(&account).Error; err != nil {
		return nil, err
	}

	return &account, nil
}
