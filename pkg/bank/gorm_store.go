package bank

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tomasbusse/avalingo/pkg/model"
)

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// GormStore implements Store using GORM for database operations.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Transaction wraps operations in a database transaction.
func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// UpsertQuestion inserts a question or updates it in place by id.
func (s *GormStore) UpsertQuestion(q *model.Question) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"type", "level", "topic", "difficulty", "tags", "content", "active", "updated_at",
		}),
	}).Create(q).Error
}
