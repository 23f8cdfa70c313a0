// Package rbac implements permission resolution over role assignments.
//
// A user holds a set of role assignments, each granting one role at one
// scope (global, organization or group). Roles may inherit from a parent
// role, forming a chain such as guest -> student -> teacher ->
// company_admin. Resolution flattens the assignments into the effective set
// of permission strings, following inheritance with a visited set so that
// corrupted role data (including self-referencing cycles) can never loop.
//
// The package is pure: it performs no I/O of its own and reads roles through
// the RoleStore interface supplied by the caller. A missing or inactive role
// contributes nothing; it is never an error.
package rbac
