// Package migrations содержит встроенные SQL-миграции схемы,
// применяются через goose при старте сервера.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
