package model

import "time"

// TestAttempt is one placement test run. The question set is snapshotted onto
// the attempt when it starts, so later bank edits never change what a
// submission is scored against. Result fields are null until scoring.
type TestAttempt struct {
	AttemptID   string         `gorm:"column:attempt_id;primaryKey"`
	UserID      string         `gorm:"column:user_id;not null"`
	Questions   QuestionSet    `gorm:"column:questions;type:jsonb;not null"`
	Answers     AnswerSet      `gorm:"column:answers;type:jsonb"`
	Level       *string        `gorm:"column:level"`
	Score       int            `gorm:"column:score"`
	TotalPoints int            `gorm:"column:total_points"`
	Breakdown   LevelBreakdown `gorm:"column:breakdown;type:jsonb"`
	StartedAt   time.Time      `gorm:"column:started_at;autoCreateTime"`
	CompletedAt *time.Time     `gorm:"column:completed_at"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}

// Completed reports whether the attempt has been scored.
func (a *TestAttempt) Completed() bool {
	return a.CompletedAt != nil
}
