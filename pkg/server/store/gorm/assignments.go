package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

// Ensure AssignmentsStore implements store.AssignmentsStore
var _ store.AssignmentsStore = (*AssignmentsStore)(nil)

type AssignmentsStore struct {
	db *gorm.DB
}

func NewAssignmentsStore(db *gorm.DB) *AssignmentsStore {
	return &AssignmentsStore{db: db}
}

func (s *AssignmentsStore) AssignmentsForUser(userID string) ([]model.RoleAssignment, error) {
	var assignments []model.RoleAssignment
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (s *AssignmentsStore) ActiveAssignmentsForUser(userID string) ([]model.RoleAssignment, error) {
	var assignments []model.RoleAssignment
	err := s.db.
		Where("user_id = ? AND active AND (expires_at IS NULL OR expires_at > NOW())", userID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (s *AssignmentsStore) AssignmentByID(id int64) *model.RoleAssignment {
	var assignment model.RoleAssignment
	err := s.db.First(&assignment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return nil
	}
	return &assignment
}

func (s *AssignmentsStore) GrantRole(assignment *model.RoleAssignment) error {
	return s.db.Create(assignment).Error
}

func (s *AssignmentsStore) RevokeAssignment(id int64) error {
	result := s.db.Model(&model.RoleAssignment{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
