// Package db embeds the SQL migrations so production builds carry their
// schema with them. Enabled with the embed_migrations build tag.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
