package store

import "github.com/tomasbusse/avalingo/pkg/model"

// QuestionsStore provides access to the question bank.
type QuestionsStore interface {
	// QuestionByID fetches a single question. Returns nil when no such
	// question exists.
	QuestionByID(questionID string) *model.Question

	// ListQuestions returns questions ordered by id, honoring limit and
	// offset. An empty level lists every level.
	ListQuestions(level string, limit, offset int) ([]model.Question, error)

	// SampleActiveQuestions returns up to n active questions of the
	// given level in random order.
	SampleActiveQuestions(level string, n int) ([]model.Question, error)

	// UpsertQuestion inserts a question or updates it in place by id.
	UpsertQuestion(question *model.Question) error
}
