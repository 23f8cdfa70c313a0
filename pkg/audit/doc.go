// Package audit provides audit logging for Avalingo operations.
//
// This package implements structured audit logging for security-relevant
// operations such as permission checks, role grants and revocations, and
// scored placement attempts.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Permission check events (allowed/denied)
//   - Role grant and revocation events
//   - Role change events
//   - Placement attempt scoring events
//
// # Usage
//
//	audit.Log(audit.CheckEvent{UserID: userID, Permission: perm, Allowed: ok})
//
// Audit events are logged in RFC5424 syslog format and optionally persisted
// to a database when AUDIT_DATABASE_URL is set.
package audit
