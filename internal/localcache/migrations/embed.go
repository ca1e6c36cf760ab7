package migrations

import "embed"

// FS holds the goose migrations for the local cache schema.
//
//go:embed *.sql
var FS embed.FS
