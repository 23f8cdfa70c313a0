// Package seed applies the built-in roles and the permission catalog to
// the database. Seeding is idempotent: existing rows are updated in place.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tomasbusse/avalingo/pkg/model"
)

//go:embed roles.yml
var rolesYAML []byte

type document struct {
	Roles []struct {
		RoleID       string   `yaml:"role_id"`
		Description  string   `yaml:"description"`
		InheritsFrom string   `yaml:"inherits_from"`
		Permissions  []string `yaml:"permissions"`
	} `yaml:"roles"`
	Permissions []struct {
		Name         string   `yaml:"name"`
		Description  string   `yaml:"description"`
		Category     string   `yaml:"category"`
		DefaultRoles []string `yaml:"default_roles"`
	} `yaml:"permissions"`
}

// Apply upserts the built-in roles and permission definitions.
func Apply(db *gorm.DB) error {
	var doc document
	if err := yaml.Unmarshal(rolesYAML, &doc); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range doc.Roles {
			role := model.Role{
				RoleID:       entry.RoleID,
				Type:         model.RoleTypeSystem,
				Description:  entry.Description,
				InheritsFrom: entry.InheritsFrom,
				Permissions:  entry.Permissions,
				Active:       true,
			}
			if role.Permissions == nil {
				role.Permissions = []string{}
			}
			// The type column stays out of the conflict update so a custom
			// role that collides with a seed id is never flipped to system.
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "role_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"description", "permissions", "inherits_from", "active", "updated_at",
				}),
			}).Create(&role).Error
			if err != nil {
				return fmt.Errorf("failed to seed role %s: %w", entry.RoleID, err)
			}
		}

		for _, entry := range doc.Permissions {
			def := model.PermissionDefinition{
				Name:         entry.Name,
				Description:  entry.Description,
				Category:     entry.Category,
				DefaultRoles: entry.DefaultRoles,
			}
			if def.DefaultRoles == nil {
				def.DefaultRoles = []string{}
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"description", "category", "default_roles"}),
			}).Create(&def).Error
			if err != nil {
				return fmt.Errorf("failed to seed permission %s: %w", entry.Name, err)
			}
		}
		return nil
	})
}
