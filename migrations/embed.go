// Package migrations embeds the corpus schema and seed data.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
