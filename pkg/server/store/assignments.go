package store

import "github.com/tomasbusse/avalingo/pkg/model"

// AssignmentsStore provides access to role assignments.
type AssignmentsStore interface {
	// AssignmentsForUser returns every assignment for a user, active or
	// not, newest first.
	AssignmentsForUser(userID string) ([]model.RoleAssignment, error)

	// ActiveAssignmentsForUser returns the assignments that currently
	// grant the user roles. Expired and revoked assignments are
	// excluded.
	ActiveAssignmentsForUser(userID string) ([]model.RoleAssignment, error)

	// AssignmentByID fetches a single assignment. Returns nil when no
	// such assignment exists.
	AssignmentByID(id int64) *model.RoleAssignment

	// GrantRole records a new assignment.
	GrantRole(assignment *model.RoleAssignment) error

	// RevokeAssignment marks an assignment inactive. Revoked
	// assignments stay on record for auditing.
	RevokeAssignment(id int64) error
}
