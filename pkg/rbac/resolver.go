package rbac

import "time"

// ResolvePermissions flattens a user's role assignments into the effective
// set of permission strings.
//
// For each live assignment the role chain is walked with an explicit
// worklist. Every role identifier is marked visited before it is expanded,
// so a cycle in the inheritance graph (role A inherits B, B inherits A)
// terminates after visiting each role once. Missing and inactive roles end
// their branch silently; one bad assignment never aborts the others.
func ResolvePermissions(store RoleStore, assignments []Assignment) PermissionSet {
	perms := PermissionSet{}
	visited := map[string]bool{}
	now := time.Now()

	for _, assignment := range assignments {
		if !assignment.Live(now) {
			continue
		}

		pending := []string{assignment.RoleID}
		for len(pending) > 0 {
			id := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			if id == "" || visited[id] {
				continue
			}
			visited[id] = true

			role := store.RoleByID(id)
			if role == nil || !role.Active {
				continue
			}

			for _, p := range role.Permissions {
				perms[p] = struct{}{}
			}
			if role.InheritsFrom != "" {
				pending = append(pending, role.InheritsFrom)
			}
		}
	}

	return perms
}

// CheckPermission reports whether the assignments grant the permission,
// optionally at a specific scope.
//
// Passing ScopeGlobal as the requested scope means "no scope requested": the
// check then only asks whether the permission itself is held, independent of
// where it was granted. For a scoped request the permission must be held AND
// the user must hold either a global assignment (global supersedes scope
// checks) or an assignment matching both the scope kind and the scope
// instance id.
func CheckPermission(store RoleStore, assignments []Assignment, permission string, scope Scope, scopeID string) bool {
	perms := ResolvePermissions(store, assignments)

	if perms.HasWildcard() {
		return true
	}
	if !perms.Has(permission) {
		return false
	}
	if scope == ScopeGlobal {
		return true
	}

	now := time.Now()
	for _, assignment := range assignments {
		if !assignment.Live(now) {
			continue
		}
		if assignment.Scope == ScopeGlobal {
			return true
		}
		if assignment.Scope == scope && assignment.ScopeID == scopeID && scopeID != "" {
			return true
		}
	}
	return false
}
