package rbac

import "time"

// Wildcard is the reserved permission value meaning "all permissions".
// It is never expanded into a concrete list; every permission check must
// special-case it, because the full permission universe is open-ended.
const Wildcard = "*"

// Role is the resolver's view of a role record: its own permission list and
// an optional parent to inherit from.
type Role struct {
	ID           string
	Permissions  []string
	InheritsFrom string
	Active       bool
}

// Assignment grants one role to one user at one scope.
type Assignment struct {
	RoleID    string
	Scope     Scope
	ScopeID   string
	Active    bool
	ExpiresAt *time.Time
}

// Live reports whether the assignment is in effect at the given time.
func (a Assignment) Live(now time.Time) bool {
	if !a.Active {
		return false
	}
	return a.ExpiresAt == nil || a.ExpiresAt.After(now)
}

// RoleStore supplies role records by identifier during resolution.
// Implementations return nil for a missing role; the resolver treats that as
// "no contribution", not as an error.
type RoleStore interface {
	RoleByID(id string) *Role
}

// PermissionSet is a deduplicated set of permission strings.
type PermissionSet map[string]struct{}

// Has reports whether the exact permission string is in the set.
func (s PermissionSet) Has(permission string) bool {
	_, ok := s[permission]
	return ok
}

// HasWildcard reports whether the set contains the wildcard permission.
func (s PermissionSet) HasWildcard() bool {
	return s.Has(Wildcard)
}

// Slice returns the permissions as a slice in no particular order.
func (s PermissionSet) Slice() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}
