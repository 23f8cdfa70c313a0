package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

// Ensure AttemptsStore implements store.AttemptsStore
var _ store.AttemptsStore = (*AttemptsStore)(nil)

type AttemptsStore struct {
	db *gorm.DB
}

func NewAttemptsStore(db *gorm.DB) *AttemptsStore {
	return &AttemptsStore{db: db}
}

func (s *AttemptsStore) CreateAttempt(attempt *model.TestAttempt) error {
	return s.db.Create(attempt).Error
}

func (s *AttemptsStore) AttemptByID(attemptID string) *model.TestAttempt {
	var attempt model.TestAttempt
	err := s.db.First(&attempt, "attempt_id = ?", attemptID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return nil
	}
	return &attempt
}

func (s *AttemptsStore) SaveResult(attempt *model.TestAttempt) error {
	return s.db.Save(attempt).Error
}

func (s *AttemptsStore) ListCompletedAttempts(limit, offset int) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := s.db.
		Where("completed_at IS NOT NULL").
		Order("completed_at DESC").
		Limit(limit).Offset(offset).
		Find(&attempts).Error
	return attempts, err
}
