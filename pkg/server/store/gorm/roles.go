package gorm

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

// Ensure RolesStore implements store.RolesStore
var _ store.RolesStore = (*RolesStore)(nil)

type RolesStore struct {
	db *gorm.DB
}

func NewRolesStore(db *gorm.DB) *RolesStore {
	return &RolesStore{db: db}
}

func (s *RolesStore) RoleExists(roleID string) bool {
	var count int64
	s.db.Model(&model.Role{}).Where("role_id = ?", roleID).Count(&count)
	return count > 0
}

func (s *RolesStore) RoleByID(roleID string) *model.Role {
	var role model.Role
	err := s.db.First(&role, "role_id = ?", roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return nil
	}
	return &role
}

func (s *RolesStore) ListRoles(limit, offset int) ([]model.Role, error) {
	var roles []model.Role
	err := s.db.Order("role_id").Limit(limit).Offset(offset).Find(&roles).Error
	return roles, err
}

func (s *RolesStore) CreateRole(role *model.Role) error {
	return s.db.Create(role).Error
}

func (s *RolesStore) UpdateRole(role *model.Role) error {
	return s.db.Save(role).Error
}

func (s *RolesStore) DeactivateRole(roleID string) error {
	result := s.db.Model(&model.Role{}).
		Where("role_id = ?", roleID).
		Updates(map[string]interface{}{"active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
