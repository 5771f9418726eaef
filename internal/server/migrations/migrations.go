// Package migrations embeds the goose migrations of both databases. Each
// database has its own directory: UsersDir for the credential database and
// GeometriesDir for the PostGIS database.
package migrations

import "embed"

const (
	UsersDir      = "users"
	GeometriesDir = "geometries"
)

//go:embed users/*.sql geometries/*.sql
var Migrations embed.FS
