// Package filplus is the module root. It only carries assets that need to be
// embedded relative to the repository root, such as SQL migrations.
package filplus

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
