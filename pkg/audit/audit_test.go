package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := CheckEvent{
		UserID:     "user-1",
		ClientIP:   "192.168.1.1",
		Permission: "roles:manage",
		Allowed:    true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "avalingo") {
		t.Error("Expected app name 'avalingo' in output")
	}
	if !strings.Contains(output, "check") {
		t.Error("Expected message ID 'check' in output")
	}
	if !strings.Contains(output, "user-1") {
		t.Error("Expected user ID in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "allowed") {
		t.Error("Expected check result in output")
	}
}

func TestCheckEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   CheckEvent
		wantMsg string
	}{
		{
			name: "allowed global check",
			event: CheckEvent{
				UserID:     "user-1",
				ClientIP:   "10.0.0.1",
				Permission: "content:manage",
				Allowed:    true,
			},
			wantMsg: "allowed",
		},
		{
			name: "denied scoped check",
			event: CheckEvent{
				UserID:     "user-2",
				ClientIP:   "10.0.0.1",
				Permission: "users:read",
				Scope:      "organization",
				ScopeID:    "org-9",
				Allowed:    false,
			},
			wantMsg: "in organization org-9: denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.MessageID() != "check" {
				t.Errorf("MessageID() = %v, want 'check'", tt.event.MessageID())
			}
			if tt.event.Facility() != FacilityAuthPriv {
				t.Errorf("Facility() = %v, want FacilityAuthPriv", tt.event.Facility())
			}
		})
	}
}

func TestGrantEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   GrantEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "successful grant",
			event: GrantEvent{
				GrantedBy: "admin-1",
				UserID:    "user-1",
				RoleID:    "teacher",
				Scope:     "group",
				ScopeID:   "grp-3",
				ClientIP:  "10.0.0.1",
				Success:   true,
			},
			wantMsg: "granted role teacher in group grp-3 to user-1",
			wantSev: SeverityInfo,
		},
		{
			name: "failed grant",
			event: GrantEvent{
				GrantedBy:    "admin-1",
				UserID:       "user-1",
				RoleID:       "nonexistent",
				ClientIP:     "10.0.0.1",
				Success:      false,
				ErrorMessage: "role not found",
			},
			wantMsg: "tried to grant",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.MessageID() != "grant" {
				t.Errorf("MessageID() = %v, want 'grant'", tt.event.MessageID())
			}
		})
	}
}

func TestRevokeEvent(t *testing.T) {
	event := RevokeEvent{
		RevokedBy: "admin-1",
		UserID:    "user-1",
		RoleID:    "teacher",
		ClientIP:  "10.0.0.1",
		Success:   true,
	}

	if event.MessageID() != "revoke" {
		t.Errorf("MessageID() = %v, want 'revoke'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "revoked role teacher from user-1") {
		t.Errorf("Message() = %q, want to contain revocation", event.Message())
	}
	if event.Severity() != SeverityInfo {
		t.Errorf("Severity() = %v, want SeverityInfo", event.Severity())
	}
}

func TestRoleChangeEvent(t *testing.T) {
	event := RoleChangeEvent{
		UserID:    "admin-1",
		RoleID:    "teacher",
		Operation: "update",
		ClientIP:  "10.0.0.1",
		Success:   true,
	}

	if event.MessageID() != "role" {
		t.Errorf("MessageID() = %v, want 'role'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "updated role teacher") {
		t.Errorf("Message() = %q, want to contain 'updated role teacher'", event.Message())
	}
}

func TestAttemptScoredEvent(t *testing.T) {
	event := AttemptScoredEvent{
		UserID:      "user-1",
		AttemptID:   "att-42",
		Level:       "B2",
		Score:       34,
		TotalPoints: 40,
		ClientIP:    "10.0.0.1",
	}

	if event.MessageID() != "placement" {
		t.Errorf("MessageID() = %v, want 'placement'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "placed at B2 (34/40)") {
		t.Errorf("Message() = %q, want to contain placement result", event.Message())
	}
	if event.Facility() != FacilityAuth {
		t.Errorf("Facility() = %v, want FacilityAuth", event.Facility())
	}
}

func TestStructuredData(t *testing.T) {
	event := CheckEvent{
		UserID:     "user-1",
		ClientIP:   "10.0.0.1",
		Permission: "roles:read",
		Scope:      "organization",
		ScopeID:    "org-1",
		Allowed:    true,
	}

	sd := event.StructuredData()

	if sd[SDIDAuth]["user"] != "user-1" {
		t.Errorf("StructuredData auth.user = %v, want 'user-1'", sd[SDIDAuth]["user"])
	}
	if sd[SDIDSubject]["permission"] != "roles:read" {
		t.Errorf("StructuredData subject.permission = %v, want 'roles:read'", sd[SDIDSubject]["permission"])
	}
	if sd[SDIDSubject]["scope_id"] != "org-1" {
		t.Errorf("StructuredData subject.scope_id = %v, want 'org-1'", sd[SDIDSubject]["scope_id"])
	}
	if sd[SDIDClient]["ip"] != "10.0.0.1" {
		t.Errorf("StructuredData client.ip = %v, want '10.0.0.1'", sd[SDIDClient]["ip"])
	}
	if sd[SDIDAction]["result"] != "success" {
		t.Errorf("StructuredData action.result = %v, want 'success'", sd[SDIDAction]["result"])
	}
}

func TestAuditToggle(t *testing.T) {
	// Save original state
	originalEnabled := auditEnabled
	defer func() {
		auditEnabled = originalEnabled
	}()

	SetEnabled(false)
	if IsEnabled() {
		t.Error("Expected audit to be disabled")
	}

	SetEnabled(true)
	if !IsEnabled() {
		t.Error("Expected audit to be enabled")
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`with"quote`, `"with\"quote"`},
		{`with\backslash`, `"with\\backslash"`},
		{`with]bracket`, `"with\]bracket"`},
		{`all"special\chars]`, `"all\"special\\chars\]"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeSDValue(tt.input)
			if got != tt.want {
				t.Errorf("escapeSDValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
