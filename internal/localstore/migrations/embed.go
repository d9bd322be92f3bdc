// Package migrations embeds the schema migrations for the sqlite local store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
