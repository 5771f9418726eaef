// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/geoportal/internal/dbx"
	"github.com/dmitrijs2005/geoportal/internal/server/migrations"
	"github.com/dmitrijs2005/geoportal/internal/server/repositories/geometries"
	"github.com/dmitrijs2005/geoportal/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// bound to whatever handle the caller holds: a pool, a dedicated connection
// or a transaction.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Geometries returns a geometries.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Geometries(db dbx.DBTX) geometries.Repository {
	return geometries.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations found in dir (one of
// migrations.UsersDir, migrations.GeometriesDir) to db.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, dir)
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
