// Package migrations embeds the versioned SQL schema files.
package migrations

import "embed"

// FS holds the migration files, one directory per dialect.
//
//go:embed sqlite/*.sql
var FS embed.FS
