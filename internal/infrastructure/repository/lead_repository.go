package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/enum"
	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/repository"
	"github.com/Harmitpatel428/Sales-Funnel/internal/infrastructure/database"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
)

type leadRepository struct {
	db *bbolt.DB
}

// NewLeadRepository creates a lead repository backed by the local
// key-value store. Each lead is serialized as JSON under its id.
func NewLeadRepository(db *bbolt.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Save(_ context.Context, lead *entity.Lead) error {
	data, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to encode lead %s: %w", lead.ID, err)
	}
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(database.LeadsBucket).Put([]byte(lead.ID), data)
	})
}

func (r *leadRepository) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	var lead *entity.Lead
	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(database.LeadsBucket).Get([]byte(id))
		if data == nil {
			return nil
		}
		decoded, err := decodeLead(data)
		if err != nil {
			return err
		}
		lead = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *leadRepository) Delete(_ context.Context, id string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(database.LeadsBucket).Delete([]byte(id))
	})
}

func (r *leadRepository) List(_ context.Context) ([]entity.Lead, error) {
	leads := make([]entity.Lead, 0)
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(database.LeadsBucket).ForEach(func(k, v []byte) error {
			lead, err := decodeLead(v)
			if err != nil {
				// a corrupt record is skipped, not fatal
				logger.Log.Warn("skipping unreadable lead record",
					zap.String("id", string(k)), zap.Error(err))
				return nil
			}
			leads = append(leads, *lead)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// keyed storage loses insertion order; restore it from the
	// creation stamp
	sort.SliceStable(leads, func(i, j int) bool {
		if leads[i].CreatedAt.Equal(leads[j].CreatedAt) {
			return leads[i].ID < leads[j].ID
		}
		return leads[i].CreatedAt.Before(leads[j].CreatedAt)
	})
	return leads, nil
}

// decodeLead unmarshals a stored record, migrating legacy status labels
// and re-asserting the main-number invariant on the way in.
func decodeLead(data []byte) (*entity.Lead, error) {
	var lead entity.Lead
	if err := json.Unmarshal(data, &lead); err != nil {
		return nil, err
	}
	if !lead.Status.IsValid() {
		lead.Status = enum.NormalizeLeadStatus(lead.Status.String())
	}
	lead.SyncMainNumber()
	return &lead, nil
}
