// Package migrations embeds the goose migrations for the seed tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
