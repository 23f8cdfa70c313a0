package model

import (
	"time"

	"github.com/tomasbusse/avalingo/pkg/rbac"
)

// RoleAssignment grants a role to a user, optionally bounded to an
// organization or group and optionally expiring.
type RoleAssignment struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string     `gorm:"column:user_id;not null"`
	RoleID    string     `gorm:"column:role_id;not null"`
	Scope     string     `gorm:"column:scope;not null;default:global"`
	ScopeID   string     `gorm:"column:scope_id"`
	GrantedBy string     `gorm:"column:granted_by"`
	Note      string     `gorm:"column:note"`
	Active    bool       `gorm:"column:active;not null;default:true"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (RoleAssignment) TableName() string {
	return "role_assignments"
}

// Resolvable converts the record into the shape the permission resolver
// consumes. The scope column is constrained to known values in the schema; a
// row that somehow violates that is dropped from resolution entirely.
func (a RoleAssignment) Resolvable() rbac.Assignment {
	scope, err := rbac.ScopeString(a.Scope)
	if err != nil {
		return rbac.Assignment{RoleID: a.RoleID, Active: false}
	}
	return rbac.Assignment{
		RoleID:    a.RoleID,
		Scope:     scope,
		ScopeID:   a.ScopeID,
		Active:    a.Active,
		ExpiresAt: a.ExpiresAt,
	}
}
