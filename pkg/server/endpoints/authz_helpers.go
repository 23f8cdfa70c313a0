package endpoints

import (
	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/rbac"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

// rolesGraph adapts the roles store to the resolver's RoleStore interface.
type rolesGraph struct {
	roles store.RolesStore
}

func (g rolesGraph) RoleByID(id string) *rbac.Role {
	record := g.roles.RoleByID(id)
	if record == nil {
		return nil
	}
	role := record.Resolvable()
	return &role
}

// effectiveAssignments loads a user's live assignments in resolver form.
// A user with no assignment at all falls back to the configured default
// role, granted globally.
func effectiveAssignments(assignments store.AssignmentsStore, cfg *config.AvalingoConfig, userID string) ([]rbac.Assignment, error) {
	records, err := assignments.ActiveAssignmentsForUser(userID)
	if err != nil {
		return nil, err
	}

	resolvable := make([]rbac.Assignment, 0, len(records))
	for _, record := range records {
		resolvable = append(resolvable, record.Resolvable())
	}
	if len(resolvable) == 0 && cfg.DefaultRole != "" {
		resolvable = append(resolvable, rbac.Assignment{
			RoleID: cfg.DefaultRole,
			Scope:  rbac.ScopeGlobal,
			Active: true,
		})
	}
	return resolvable, nil
}

// userPermissions resolves the flattened permission set of a user.
func userPermissions(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig, userID string) (rbac.PermissionSet, error) {
	resolvable, err := effectiveAssignments(assignments, cfg, userID)
	if err != nil {
		return nil, err
	}
	return rbac.ResolvePermissions(rolesGraph{roles: roles}, resolvable), nil
}

// userCan checks a permission at a scope. Pass rbac.ScopeGlobal with an
// empty scopeID for an unscoped check.
func userCan(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig, userID, permission string, scope rbac.Scope, scopeID string) (bool, error) {
	resolvable, err := effectiveAssignments(assignments, cfg, userID)
	if err != nil {
		return false, err
	}
	return rbac.CheckPermission(rolesGraph{roles: roles}, resolvable, permission, scope, scopeID), nil
}
