package repository

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/repository"
	"github.com/Harmitpatel428/Sales-Funnel/internal/infrastructure/database"
)

var passwordKey = []byte("deletePassword")

type settingsRepository struct {
	db *bbolt.DB
}

// NewSettingsRepository creates a settings repository backed by the local
// key-value store. The deletion password is stored as plain text: it is a
// confirmation gate for destructive actions, not an authentication secret.
func NewSettingsRepository(db *bbolt.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Password(_ context.Context) (string, error) {
	var password string
	err := r.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(database.SettingsBucket).Get(passwordKey); data != nil {
			password = string(data)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return password, nil
}

func (r *settingsRepository) SetPassword(_ context.Context, password string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(database.SettingsBucket).Put(passwordKey, []byte(password))
	})
}
