// Package migrations embeds the query journal's SQL migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
