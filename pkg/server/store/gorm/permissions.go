package gorm

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

// Ensure PermissionsStore implements store.PermissionsStore
var _ store.PermissionsStore = (*PermissionsStore)(nil)

type PermissionsStore struct {
	db *gorm.DB
}

func NewPermissionsStore(db *gorm.DB) *PermissionsStore {
	return &PermissionsStore{db: db}
}

func (s *PermissionsStore) ListPermissions() ([]model.PermissionDefinition, error) {
	var defs []model.PermissionDefinition
	err := s.db.Order("name").Find(&defs).Error
	return defs, err
}

func (s *PermissionsStore) UpsertPermission(def *model.PermissionDefinition) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "category"}),
	}).Create(def).Error
}
