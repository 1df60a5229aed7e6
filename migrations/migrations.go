// Package migrations embeds the SQL migrations for the documents container.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
