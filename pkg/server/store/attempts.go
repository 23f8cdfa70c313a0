package store

import "github.com/tomasbusse/avalingo/pkg/model"

// AttemptsStore provides access to placement test attempts.
type AttemptsStore interface {
	// CreateAttempt records a newly started attempt.
	CreateAttempt(attempt *model.TestAttempt) error

	// AttemptByID fetches a single attempt. Returns nil when no such
	// attempt exists.
	AttemptByID(attemptID string) *model.TestAttempt

	// SaveResult persists the answers and scoring outcome of a
	// completed attempt.
	SaveResult(attempt *model.TestAttempt) error

	// ListCompletedAttempts returns completed attempts newest first,
	// honoring limit and offset.
	ListCompletedAttempts(limit, offset int) ([]model.TestAttempt, error)
}
