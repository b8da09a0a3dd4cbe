// Package migrations embeds the goose SQL migrations for the batcher schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
