package gorm

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

// Ensure QuestionsStore implements store.QuestionsStore
var _ store.QuestionsStore = (*QuestionsStore)(nil)

type QuestionsStore struct {
	db *gorm.DB
}

func NewQuestionsStore(db *gorm.DB) *QuestionsStore {
	return &QuestionsStore{db: db}
}

func (s *QuestionsStore) QuestionByID(questionID string) *model.Question {
	var question model.Question
	err := s.db.First(&question, "question_id = ?", questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return nil
	}
	return &question
}

func (s *QuestionsStore) ListQuestions(level string, limit, offset int) ([]model.Question, error) {
	var questions []model.Question
	query := s.db.Order("question_id").Limit(limit).Offset(offset)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	err := query.Find(&questions).Error
	return questions, err
}

func (s *QuestionsStore) SampleActiveQuestions(level string, n int) ([]model.Question, error) {
	var questions []model.Question
	err := s.db.Raw(`
      SELECT * FROM questions
      WHERE level = ? AND active
      ORDER BY RANDOM()
      LIMIT ?
    `, level, n).Scan(&questions).Error
	return questions, err
}

func (s *QuestionsStore) UpsertQuestion(question *model.Question) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"type", "level", "topic", "difficulty", "tags", "content", "active", "updated_at",
		}),
	}).Create(question).Error
}
