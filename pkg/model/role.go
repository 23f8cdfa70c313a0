package model

import (
	"time"

	"github.com/tomasbusse/avalingo/pkg/rbac"
)

// Role classifications. Seeded roles are system roles; roles created over
// the API are custom. A custom role never becomes a system role.
const (
	RoleTypeSystem = "system"
	RoleTypeCustom = "custom"
)

// Role represents a named permission bundle. A role may inherit from at most
// one parent role; resolution flattens the chain.
type Role struct {
	RoleID       string     `gorm:"column:role_id;primaryKey"`
	Type         string     `gorm:"column:type;not null;default:custom"`
	Description  string     `gorm:"column:description"`
	Permissions  StringList `gorm:"column:permissions;type:jsonb;not null"`
	InheritsFrom string     `gorm:"column:inherits_from"`
	Active       bool       `gorm:"column:active;not null;default:true"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Role) TableName() string {
	return "roles"
}

// Resolvable converts the record into the shape the permission resolver
// traverses.
func (r Role) Resolvable() rbac.Role {
	return rbac.Role{
		ID:           r.RoleID,
		Permissions:  r.Permissions,
		InheritsFrom: r.InheritsFrom,
		Active:       r.Active,
	}
}
