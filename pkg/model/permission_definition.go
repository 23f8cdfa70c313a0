package model

// PermissionDefinition is a catalog entry for a known permission string.
// Roles may reference permissions outside the catalog; the catalog exists for
// discovery and admin tooling.
type PermissionDefinition struct {
	Name         string     `gorm:"column:name;primaryKey"`
	Description  string     `gorm:"column:description"`
	Category     string     `gorm:"column:category"`
	DefaultRoles StringList `gorm:"column:default_roles;type:jsonb;not null"`
}

func (PermissionDefinition) TableName() string {
	return "permission_definitions"
}
