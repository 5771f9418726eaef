// Package services contains the server-side logic behind the HTTP handlers:
// AuthService checks credentials, GeometryService persists geometries.
package services

import (
	"context"
	"database/sql"
)

// Connector hands out a connection scoped to one operation. The release
// func must be called exactly when the caller is done with conn.
type Connector interface {
	Acquire(ctx context.Context) (conn *sql.Conn, release func(), err error)
}
