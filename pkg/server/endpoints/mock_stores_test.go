package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/tomasbusse/avalingo/pkg/model"
)

type mockRolesStore struct {
	mock.Mock
}

func (m *mockRolesStore) RoleExists(roleID string) bool {
	args := m.Called(roleID)
	return args.Bool(0)
}

func (m *mockRolesStore) RoleByID(roleID string) *model.Role {
	args := m.Called(roleID)
	if role := args.Get(0); role != nil {
		return role.(*model.Role)
	}
	return nil
}

func (m *mockRolesStore) ListRoles(limit, offset int) ([]model.Role, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *mockRolesStore) CreateRole(role *model.Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *mockRolesStore) UpdateRole(role *model.Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *mockRolesStore) DeactivateRole(roleID string) error {
	args := m.Called(roleID)
	return args.Error(0)
}

type mockAssignmentsStore struct {
	mock.Mock
}

func (m *mockAssignmentsStore) AssignmentsForUser(userID string) ([]model.RoleAssignment, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.RoleAssignment), args.Error(1)
}

func (m *mockAssignmentsStore) ActiveAssignmentsForUser(userID string) ([]model.RoleAssignment, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.RoleAssignment), args.Error(1)
}

func (m *mockAssignmentsStore) AssignmentByID(id int64) *model.RoleAssignment {
	args := m.Called(id)
	if assignment := args.Get(0); assignment != nil {
		return assignment.(*model.RoleAssignment)
	}
	return nil
}

func (m *mockAssignmentsStore) GrantRole(assignment *model.RoleAssignment) error {
	args := m.Called(assignment)
	return args.Error(0)
}

func (m *mockAssignmentsStore) RevokeAssignment(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockPermissionsStore struct {
	mock.Mock
}

func (m *mockPermissionsStore) ListPermissions() ([]model.PermissionDefinition, error) {
	args := m.Called()
	return args.Get(0).([]model.PermissionDefinition), args.Error(1)
}

func (m *mockPermissionsStore) UpsertPermission(def *model.PermissionDefinition) error {
	args := m.Called(def)
	return args.Error(0)
}

type mockQuestionsStore struct {
	mock.Mock
}

func (m *mockQuestionsStore) QuestionByID(questionID string) *model.Question {
	args := m.Called(questionID)
	if question := args.Get(0); question != nil {
		return question.(*model.Question)
	}
	return nil
}

func (m *mockQuestionsStore) ListQuestions(level string, limit, offset int) ([]model.Question, error) {
	args := m.Called(level, limit, offset)
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *mockQuestionsStore) SampleActiveQuestions(level string, n int) ([]model.Question, error) {
	args := m.Called(level, n)
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *mockQuestionsStore) UpsertQuestion(question *model.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

type mockAttemptsStore struct {
	mock.Mock
}

func (m *mockAttemptsStore) CreateAttempt(attempt *model.TestAttempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *mockAttemptsStore) AttemptByID(attemptID string) *model.TestAttempt {
	args := m.Called(attemptID)
	if attempt := args.Get(0); attempt != nil {
		return attempt.(*model.TestAttempt)
	}
	return nil
}

func (m *mockAttemptsStore) SaveResult(attempt *model.TestAttempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *mockAttemptsStore) ListCompletedAttempts(limit, offset int) ([]model.TestAttempt, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]model.TestAttempt), args.Error(1)
}
