package gorm

import (
	"gorm.io/gorm"

	"github.com/tomasbusse/avalingo/pkg/server/store"
)

// Ensure HealthStore implements store.HealthStore
var _ store.HealthStore = (*HealthStore)(nil)

type HealthStore struct {
	db *gorm.DB
}

func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

func (s *HealthStore) CheckConnectivity() error {
	var one int
	return s.db.Raw(`SELECT 1`).Scan(&one).Error
}
