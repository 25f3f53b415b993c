package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/repository"
	"github.com/Harmitpatel428/Sales-Funnel/internal/infrastructure/database"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
)

type savedViewRepository struct {
	db *bbolt.DB
}

// NewSavedViewRepository creates a saved-view repository backed by the
// local key-value store
func NewSavedViewRepository(db *bbolt.DB) repository.SavedViewRepository {
	return &savedViewRepository{db: db}
}

func (r *savedViewRepository) Save(_ context.Context, view *entity.SavedView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to encode saved view %s: %w", view.ID, err)
	}
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(database.ViewsBucket).Put([]byte(view.ID), data)
	})
}

func (r *savedViewRepository) GetByID(_ context.Context, id string) (*entity.SavedView, error) {
	var view *entity.SavedView
	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(database.ViewsBucket).Get([]byte(id))
		if data == nil {
			return nil
		}
		var v entity.SavedView
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *savedViewRepository) Delete(_ context.Context, id string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(database.ViewsBucket).Delete([]byte(id))
	})
}

func (r *savedViewRepository) List(_ context.Context) ([]entity.SavedView, error) {
	views := make([]entity.SavedView, 0)
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(database.ViewsBucket).ForEach(func(k, v []byte) error {
			var view entity.SavedView
			if err := json.Unmarshal(v, &view); err != nil {
				logger.Log.Warn("skipping unreadable saved view",
					zap.String("id", string(k)), zap.Error(err))
				return nil
			}
			views = append(views, view)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}
