package store

import "github.com/tomasbusse/avalingo/pkg/model"

// RolesStore provides access to role definitions.
type RolesStore interface {
	// RoleExists reports whether a role with the given id exists,
	// active or not.
	RoleExists(roleID string) bool

	// RoleByID fetches a single role. Returns nil when no such role
	// exists.
	RoleByID(roleID string) *model.Role

	// ListRoles returns roles ordered by id, honoring limit and offset.
	ListRoles(limit, offset int) ([]model.Role, error)

	// CreateRole inserts a new role definition.
	CreateRole(role *model.Role) error

	// UpdateRole saves changes to an existing role.
	UpdateRole(role *model.Role) error

	// DeactivateRole marks a role inactive without deleting it, so
	// existing assignments keep their history.
	DeactivateRole(roleID string) error
}
