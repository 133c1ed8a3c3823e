// Package migrations registers the schema migrations applied by the
// `groupuser db` commands.
package migrations

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the registry consumed by bun's migrator.
var Migrations = migrate.NewMigrations()
