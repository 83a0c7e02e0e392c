// Package migrations embeds the SQL schema files so the compiled binary
// can create its own database on first start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
