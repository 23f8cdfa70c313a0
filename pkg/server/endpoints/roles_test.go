package endpoints

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tomasbusse/avalingo/pkg/model"
)

func adminMocks(userID string) (*mockRolesStore, *mockAssignmentsStore) {
	roles := new(mockRolesStore)
	assignments := new(mockAssignmentsStore)
	roles.On("RoleByID", "super_admin").Return(adminRole())
	assignments.On("ActiveAssignmentsForUser", userID).Return([]model.RoleAssignment{adminAssignment(userID)}, nil)
	return roles, assignments
}

func TestRoleCreate(t *testing.T) {
	roles, assignments := adminMocks("admin")
	roles.On("RoleExists", "editor").Return(false)
	roles.On("CreateRole", mock.AnythingOfType("*model.Role")).Return(nil)

	body := `{"role_id": "editor", "description": "Content editors", "permissions": ["content:manage"]}`
	req := requestWithUser("POST", "/roles", strings.NewReader(body), "admin")
	recorder := httptest.NewRecorder()

	handleRoleCreate(roles, assignments, testConfig())(recorder, req)

	require.Equal(t, 201, recorder.Code)
	var response roleResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "editor", response.RoleID)
	assert.Equal(t, model.RoleTypeCustom, response.Type)
	assert.True(t, response.Active)
	roles.AssertCalled(t, "CreateRole", mock.MatchedBy(func(role *model.Role) bool {
		return role.RoleID == "editor" && role.Type == model.RoleTypeCustom
	}))
}

func TestRoleUpdatePreservesSystemType(t *testing.T) {
	roles, assignments := adminMocks("admin")
	roles.On("RoleByID", "teacher").Return(&model.Role{
		RoleID:      "teacher",
		Type:        model.RoleTypeSystem,
		Permissions: model.StringList{"content:manage"},
		Active:      true,
	})
	roles.On("UpdateRole", mock.AnythingOfType("*model.Role")).Return(nil)

	body := `{"description": "Updated description", "type": "custom"}`
	req := requestWithUser("PUT", "/roles/teacher", strings.NewReader(body), "admin")
	req = withMuxVars(req, map[string]string{"roleID": "teacher"})
	recorder := httptest.NewRecorder()

	handleRoleUpdate(roles, assignments, testConfig())(recorder, req)

	require.Equal(t, 200, recorder.Code)
	var response roleResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, model.RoleTypeSystem, response.Type)
	roles.AssertCalled(t, "UpdateRole", mock.MatchedBy(func(role *model.Role) bool {
		return role.Type == model.RoleTypeSystem
	}))
}

func TestRoleCreateForbidden(t *testing.T) {
	roles := new(mockRolesStore)
	assignments := new(mockAssignmentsStore)
	roles.On("RoleByID", "student").Return(studentRole())
	assignments.On("ActiveAssignmentsForUser", "bob").Return([]model.RoleAssignment{}, nil)

	body := `{"role_id": "editor"}`
	req := requestWithUser("POST", "/roles", strings.NewReader(body), "bob")
	recorder := httptest.NewRecorder()

	handleRoleCreate(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 403, recorder.Code)
	roles.AssertNotCalled(t, "CreateRole", mock.Anything)
}

func TestRoleCreateConflict(t *testing.T) {
	roles, assignments := adminMocks("admin")
	roles.On("RoleExists", "editor").Return(true)

	body := `{"role_id": "editor"}`
	req := requestWithUser("POST", "/roles", strings.NewReader(body), "admin")
	recorder := httptest.NewRecorder()

	handleRoleCreate(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 409, recorder.Code)
}

func TestRoleCreateRejectsSelfInheritance(t *testing.T) {
	roles, assignments := adminMocks("admin")

	body := `{"role_id": "editor", "inherits_from": "editor"}`
	req := requestWithUser("POST", "/roles", strings.NewReader(body), "admin")
	recorder := httptest.NewRecorder()

	handleRoleCreate(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 400, recorder.Code)
}

func TestRoleCreateRejectsMissingParent(t *testing.T) {
	roles, assignments := adminMocks("admin")
	roles.On("RoleExists", "ghost").Return(false)

	body := `{"role_id": "editor", "inherits_from": "ghost"}`
	req := requestWithUser("POST", "/roles", strings.NewReader(body), "admin")
	recorder := httptest.NewRecorder()

	handleRoleCreate(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 400, recorder.Code)
}

func TestRoleShowNotFound(t *testing.T) {
	roles, assignments := adminMocks("admin")
	roles.On("RoleByID", "ghost").Return(nil)

	req := requestWithUser("GET", "/roles/ghost", nil, "admin")
	req = withMuxVars(req, map[string]string{"roleID": "ghost"})
	recorder := httptest.NewRecorder()

	handleRoleShow(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 404, recorder.Code)
}

func TestRoleDeactivate(t *testing.T) {
	roles, assignments := adminMocks("admin")
	roles.On("DeactivateRole", "editor").Return(nil)

	req := requestWithUser("DELETE", "/roles/editor", nil, "admin")
	req = withMuxVars(req, map[string]string{"roleID": "editor"})
	recorder := httptest.NewRecorder()

	handleRoleDeactivate(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 204, recorder.Code)
}

func TestRoleDeactivateNotFound(t *testing.T) {
	roles, assignments := adminMocks("admin")
	roles.On("DeactivateRole", "ghost").Return(gorm.ErrRecordNotFound)

	req := requestWithUser("DELETE", "/roles/ghost", nil, "admin")
	req = withMuxVars(req, map[string]string{"roleID": "ghost"})
	recorder := httptest.NewRecorder()

	handleRoleDeactivate(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 404, recorder.Code)
}

func TestAssignmentGrantScoped(t *testing.T) {
	roles, assignments := adminMocks("admin")
	roles.On("RoleExists", "teacher").Return(true)
	assignments.On("GrantRole", mock.AnythingOfType("*model.RoleAssignment")).Return(nil)

	body := `{"role_id": "teacher", "scope": "organization", "scope_id": "org-1", "note": "spring cohort"}`
	req := requestWithUser("POST", "/users/alice/assignments", strings.NewReader(body), "admin")
	req = withMuxVars(req, map[string]string{"userID": "alice"})
	recorder := httptest.NewRecorder()

	handleAssignmentGrant(roles, assignments, testConfig())(recorder, req)

	require.Equal(t, 201, recorder.Code)
	var response assignmentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "alice", response.UserID)
	assert.Equal(t, "organization", response.Scope)
	assert.Equal(t, "org-1", response.ScopeID)
	assert.Equal(t, "admin", response.GrantedBy)
	assert.Equal(t, "spring cohort", response.Note)
	assignments.AssertCalled(t, "GrantRole", mock.MatchedBy(func(a *model.RoleAssignment) bool {
		return a.GrantedBy == "admin" && a.Note == "spring cohort"
	}))
}

func TestAssignmentGrantRejectsScopedWithoutScopeID(t *testing.T) {
	roles, assignments := adminMocks("admin")

	body := `{"role_id": "teacher", "scope": "group"}`
	req := requestWithUser("POST", "/users/alice/assignments", strings.NewReader(body), "admin")
	req = withMuxVars(req, map[string]string{"userID": "alice"})
	recorder := httptest.NewRecorder()

	handleAssignmentGrant(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 400, recorder.Code)
	assignments.AssertNotCalled(t, "GrantRole", mock.Anything)
}

func TestAssignmentRevoke(t *testing.T) {
	roles, assignments := adminMocks("admin")
	assignments.On("AssignmentByID", int64(42)).Return(&model.RoleAssignment{
		ID: 42, UserID: "alice", RoleID: "teacher", Scope: "global", Active: true,
	})
	assignments.On("RevokeAssignment", int64(42)).Return(nil)

	req := requestWithUser("DELETE", "/users/alice/assignments/42", nil, "admin")
	req = withMuxVars(req, map[string]string{"userID": "alice", "assignmentID": "42"})
	recorder := httptest.NewRecorder()

	handleAssignmentRevoke(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 204, recorder.Code)
}

func TestAssignmentRevokeUserMismatch(t *testing.T) {
	roles, assignments := adminMocks("admin")
	assignments.On("AssignmentByID", int64(42)).Return(&model.RoleAssignment{
		ID: 42, UserID: "bob", RoleID: "teacher", Scope: "global", Active: true,
	})

	req := requestWithUser("DELETE", "/users/alice/assignments/42", nil, "admin")
	req = withMuxVars(req, map[string]string{"userID": "alice", "assignmentID": "42"})
	recorder := httptest.NewRecorder()

	handleAssignmentRevoke(roles, assignments, testConfig())(recorder, req)

	assert.Equal(t, 404, recorder.Code)
	assignments.AssertNotCalled(t, "RevokeAssignment", mock.Anything)
}
