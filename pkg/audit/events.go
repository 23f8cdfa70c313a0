package audit

import "fmt"

// CheckEvent represents a permission check audit event
type CheckEvent struct {
	UserID     string
	ClientIP   string
	Permission string
	Scope      string
	ScopeID    string
	Allowed    bool
}

func (e CheckEvent) MessageID() string {
	return "check"
}

func (e CheckEvent) Message() string {
	target := e.Permission
	if e.ScopeID != "" {
		target = fmt.Sprintf("%s in %s %s", e.Permission, e.Scope, e.ScopeID)
	}
	if e.Allowed {
		return fmt.Sprintf("%s checked permission %s: allowed", e.UserID, target)
	}
	return fmt.Sprintf("%s checked permission %s: denied", e.UserID, target)
}

func (e CheckEvent) Severity() Severity {
	return SeverityInfo
}

func (e CheckEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CheckEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"permission": e.Permission,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "check",
			"result":    result,
		},
	}
	if e.ScopeID != "" {
		sd[SDIDSubject]["scope"] = e.Scope
		sd[SDIDSubject]["scope_id"] = e.ScopeID
	}
	return sd
}

// GrantEvent represents a role grant audit event
type GrantEvent struct {
	GrantedBy    string
	UserID       string
	RoleID       string
	Scope        string
	ScopeID      string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e GrantEvent) MessageID() string {
	return "grant"
}

func (e GrantEvent) Message() string {
	target := e.RoleID
	if e.ScopeID != "" {
		target = fmt.Sprintf("%s in %s %s", e.RoleID, e.Scope, e.ScopeID)
	}
	if e.Success {
		return fmt.Sprintf("%s granted role %s to %s", e.GrantedBy, target, e.UserID)
	}
	msg := fmt.Sprintf("%s tried to grant role %s to %s", e.GrantedBy, target, e.UserID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e GrantEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e GrantEvent) Facility() int {
	return FacilityAuthPriv
}

func (e GrantEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.GrantedBy,
		},
		SDIDSubject: {
			"user": e.UserID,
			"role": e.RoleID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "grant",
			"result":    result,
		},
	}
	if e.ScopeID != "" {
		sd[SDIDSubject]["scope"] = e.Scope
		sd[SDIDSubject]["scope_id"] = e.ScopeID
	}
	return sd
}

// RevokeEvent represents a role assignment revocation audit event
type RevokeEvent struct {
	RevokedBy    string
	UserID       string
	RoleID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e RevokeEvent) MessageID() string {
	return "revoke"
}

func (e RevokeEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s revoked role %s from %s", e.RevokedBy, e.RoleID, e.UserID)
	}
	msg := fmt.Sprintf("%s tried to revoke role %s from %s", e.RevokedBy, e.RoleID, e.UserID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RevokeEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RevokeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RevokeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.RevokedBy,
		},
		SDIDSubject: {
			"user": e.UserID,
			"role": e.RoleID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "revoke",
			"result":    result,
		},
	}
}

// RoleChangeEvent represents a role create, update or deactivate audit event
type RoleChangeEvent struct {
	UserID       string
	RoleID       string
	Operation    string // "create", "update", "deactivate"
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e RoleChangeEvent) MessageID() string {
	return "role"
}

func (e RoleChangeEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s %sd role %s", e.UserID, e.Operation, e.RoleID)
	}
	msg := fmt.Sprintf("%s tried to %s role %s", e.UserID, e.Operation, e.RoleID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RoleChangeEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RoleChangeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RoleChangeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"role": e.RoleID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
}

// AttemptScoredEvent represents a scored placement attempt audit event
type AttemptScoredEvent struct {
	UserID      string
	AttemptID   string
	Level       string
	Score       int
	TotalPoints int
	ClientIP    string
}

func (e AttemptScoredEvent) MessageID() string {
	return "placement"
}

func (e AttemptScoredEvent) Message() string {
	return fmt.Sprintf("%s completed attempt %s: placed at %s (%d/%d)",
		e.UserID, e.AttemptID, e.Level, e.Score, e.TotalPoints)
}

func (e AttemptScoredEvent) Severity() Severity {
	return SeverityInfo
}

func (e AttemptScoredEvent) Facility() int {
	return FacilityAuth
}

func (e AttemptScoredEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"attempt": e.AttemptID,
			"level":   e.Level,
			"score":   fmt.Sprintf("%d/%d", e.Score, e.TotalPoints),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "score",
			"result":    "success",
		},
	}
}
