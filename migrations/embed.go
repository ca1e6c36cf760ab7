package migrations

import "embed"

// Files stores forward-only SQL migrations for the server store.
//
//go:embed *.sql
var Files embed.FS
