package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/geoportal/internal/dbx"
	"github.com/dmitrijs2005/geoportal/internal/server/repositories/geometries"
	"github.com/dmitrijs2005/geoportal/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB, dir string) error
	Users(db dbx.DBTX) users.Repository
	Geometries(db dbx.DBTX) geometries.Repository
}
