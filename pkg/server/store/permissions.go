package store

import "github.com/tomasbusse/avalingo/pkg/model"

// PermissionsStore provides access to the permission catalog.
type PermissionsStore interface {
	// ListPermissions returns every known permission definition,
	// ordered by name.
	ListPermissions() ([]model.PermissionDefinition, error)

	// UpsertPermission inserts a definition or updates it in place by
	// name.
	UpsertPermission(def *model.PermissionDefinition) error
}
