// Package model defines the database models for Avalingo.
//
// This package contains GORM models that map to the Avalingo PostgreSQL
// schema. Structured payloads (permission lists, question content, attempt
// snapshots) are stored as jsonb columns through the scanner types in
// types.go.
//
// # Core Models
//
//   - Role: a named permission bundle with single inheritance
//   - RoleAssignment: a role granted to a user, optionally scoped and expiring
//   - PermissionDefinition: the catalog of known permission strings
//   - Question: a question bank entry with its typed content payload
//   - TestAttempt: a placement test run with its question snapshot and result
//
// # Database Schema
//
// The schema lives in db/migrations and is applied with golang-migrate:
//
//   - roles: permission bundles
//   - role_assignments: grants of roles to users
//   - permission_definitions: permission catalog
//   - questions: question bank
//   - test_attempts: placement test runs
//   - messages: audit log (see pkg/audit)
package model
