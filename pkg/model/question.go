package model

import (
	"fmt"
	"time"

	"github.com/tomasbusse/avalingo/pkg/placement"
)

// Question is a question bank entry. Type and level are stored as their
// string forms; content is the typed payload serialized to jsonb.
type Question struct {
	QuestionID string          `gorm:"column:question_id;primaryKey"`
	Type       string          `gorm:"column:type;not null"`
	Level      string          `gorm:"column:level;not null"`
	Topic      string          `gorm:"column:topic"`
	Difficulty float64         `gorm:"column:difficulty"`
	Tags       StringList      `gorm:"column:tags;type:jsonb;not null"`
	Content    QuestionContent `gorm:"column:content;type:jsonb"`
	Active     bool            `gorm:"column:active;not null;default:true"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}

// Placement converts the record into the scoring package's representation.
func (q Question) Placement() (placement.Question, error) {
	questionType, err := placement.QuestionTypeString(q.Type)
	if err != nil {
		return placement.Question{}, fmt.Errorf("question %s: %w", q.QuestionID, err)
	}
	level, err := placement.LevelString(q.Level)
	if err != nil {
		return placement.Question{}, fmt.Errorf("question %s: %w", q.QuestionID, err)
	}
	return placement.Question{
		ID:         q.QuestionID,
		Type:       questionType,
		Level:      level,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Tags:       q.Tags,
		Content:    q.Content.Content,
	}, nil
}
