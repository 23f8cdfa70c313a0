// Package store defines the storage interfaces the API endpoints depend
// on. Implementations live in subpackages, currently only the GORM-backed
// one under store/gorm. Endpoints program against these interfaces so
// tests can substitute mocks.
package store
