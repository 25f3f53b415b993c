package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/Harmitpatel428/Sales-Funnel/internal/config"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
)

// Bucket names of the local key-value store
var (
	LeadsBucket    = []byte("leads")
	ViewsBucket    = []byte("savedViews")
	SettingsBucket = []byte("settings")
)

// NewBoltDB opens the embedded key-value store and makes sure every
// bucket exists. A missing file is created; a missing bucket starts an
// empty collection rather than an error.
func NewBoltDB(cfg *config.StoreConfig) (*bbolt.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{LeadsBucket, ViewsBucket, SettingsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Log.Info("opened lead store", zap.String("path", cfg.Path))
	return db, nil
}
