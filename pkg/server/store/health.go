package store

// HealthStore reports on the health of the storage backend.
type HealthStore interface {
	// CheckConnectivity verifies the database connection is usable.
	CheckConnectivity() error
}
