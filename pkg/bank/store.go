package bank

import "github.com/tomasbusse/avalingo/pkg/model"

// Store abstracts the storage operations for bank loading.
// This allows the loader to work with different backends (e.g., database, mock for testing).
type Store interface {
	// Transaction wraps operations in a database transaction.
	// The provided function receives a transactional Store.
	// If the function returns an error, the transaction is rolled back.
	Transaction(fn func(Store) error) error

	// UpsertQuestion inserts a question or updates it in place by id.
	UpsertQuestion(q *model.Question) error
}
