package rbac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mapRoleStore is an in-memory RoleStore for tests.
type mapRoleStore map[string]*Role

func (m mapRoleStore) RoleByID(id string) *Role {
	return m[id]
}

func active(roleID string) Assignment {
	return Assignment{RoleID: roleID, Scope: ScopeGlobal, Active: true}
}

func TestResolvePermissions(t *testing.T) {
	t.Run("flattens an inheritance chain", func(t *testing.T) {
		store := mapRoleStore{
			"guest":         {ID: "guest", Permissions: []string{"content:read"}, Active: true},
			"student":       {ID: "student", Permissions: []string{"attempts:create"}, InheritsFrom: "guest", Active: true},
			"teacher":       {ID: "teacher", Permissions: []string{"content:manage"}, InheritsFrom: "student", Active: true},
			"company_admin": {ID: "company_admin", Permissions: []string{"roles:assign"}, InheritsFrom: "teacher", Active: true},
		}

		perms := ResolvePermissions(store, []Assignment{active("company_admin")})

		assert.True(t, perms.Has("content:read"))
		assert.True(t, perms.Has("attempts:create"))
		assert.True(t, perms.Has("content:manage"))
		assert.True(t, perms.Has("roles:assign"))
		assert.Len(t, perms, 4)
	})

	t.Run("terminates on an inheritance cycle", func(t *testing.T) {
		store := mapRoleStore{
			"a": {ID: "a", Permissions: []string{"p1"}, InheritsFrom: "b", Active: true},
			"b": {ID: "b", Permissions: []string{"p2"}, InheritsFrom: "a", Active: true},
		}

		perms := ResolvePermissions(store, []Assignment{active("a")})

		assert.Equal(t, PermissionSet{"p1": {}, "p2": {}}, perms)
	})

	t.Run("self-referencing role terminates", func(t *testing.T) {
		store := mapRoleStore{
			"loop": {ID: "loop", Permissions: []string{"p"}, InheritsFrom: "loop", Active: true},
		}

		perms := ResolvePermissions(store, []Assignment{active("loop")})
		assert.Equal(t, PermissionSet{"p": {}}, perms)
	})

	t.Run("missing and inactive roles contribute nothing", func(t *testing.T) {
		store := mapRoleStore{
			"disabled": {ID: "disabled", Permissions: []string{"p1"}, Active: false},
			"ok":       {ID: "ok", Permissions: []string{"p2"}, InheritsFrom: "gone", Active: true},
		}

		perms := ResolvePermissions(store, []Assignment{
			active("disabled"),
			active("ghost"),
			active("ok"),
		})

		assert.Equal(t, PermissionSet{"p2": {}}, perms)
	})

	t.Run("skips inactive and expired assignments", func(t *testing.T) {
		store := mapRoleStore{
			"r": {ID: "r", Permissions: []string{"p"}, Active: true},
		}
		past := time.Now().Add(-time.Hour)

		perms := ResolvePermissions(store, []Assignment{
			{RoleID: "r", Active: false},
			{RoleID: "r", Active: true, ExpiresAt: &past},
		})
		assert.Empty(t, perms)
	})

	t.Run("is idempotent", func(t *testing.T) {
		store := mapRoleStore{
			"r": {ID: "r", Permissions: []string{"p1", "p2"}, Active: true},
		}
		assignments := []Assignment{active("r")}

		first := ResolvePermissions(store, assignments)
		second := ResolvePermissions(store, assignments)
		assert.Equal(t, first, second)
	})
}

func TestCheckPermission(t *testing.T) {
	store := mapRoleStore{
		"admin":  {ID: "admin", Permissions: []string{Wildcard}, Active: true},
		"editor": {ID: "editor", Permissions: []string{"content:manage"}, Active: true},
	}

	t.Run("wildcard dominates every permission and scope", func(t *testing.T) {
		assignments := []Assignment{active("admin")}

		assert.True(t, CheckPermission(store, assignments, "anything:at:all", ScopeGlobal, ""))
		assert.True(t, CheckPermission(store, assignments, "content:manage", ScopeOrganization, "org-1"))
	})

	t.Run("absent permission is denied", func(t *testing.T) {
		assignments := []Assignment{active("editor")}
		assert.False(t, CheckPermission(store, assignments, "roles:manage", ScopeGlobal, ""))
	})

	t.Run("no requested scope only needs the permission", func(t *testing.T) {
		orgID := "org-1"
		assignments := []Assignment{{RoleID: "editor", Scope: ScopeOrganization, ScopeID: orgID, Active: true}}
		assert.True(t, CheckPermission(store, assignments, "content:manage", ScopeGlobal, ""))
	})

	t.Run("scoped assignment only matches its own scope id", func(t *testing.T) {
		assignments := []Assignment{{RoleID: "editor", Scope: ScopeOrganization, ScopeID: "org-x", Active: true}}

		assert.True(t, CheckPermission(store, assignments, "content:manage", ScopeOrganization, "org-x"))
		assert.False(t, CheckPermission(store, assignments, "content:manage", ScopeOrganization, "org-y"))
		assert.False(t, CheckPermission(store, assignments, "content:manage", ScopeGroup, "org-x"))
	})

	t.Run("global assignment supersedes scope checks", func(t *testing.T) {
		assignments := []Assignment{
			{RoleID: "editor", Scope: ScopeOrganization, ScopeID: "org-x", Active: true},
			active("editor"),
		}
		assert.True(t, CheckPermission(store, assignments, "content:manage", ScopeOrganization, "org-y"))
	})
}
