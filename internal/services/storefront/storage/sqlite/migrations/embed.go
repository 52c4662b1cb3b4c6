package migrations

import "embed"

// FS contains embedded SQLite migrations for storefront storage.
//
//go:embed *.sql
var FS embed.FS
