package geometries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/geoportal/internal/common"
	"github.com/dmitrijs2005/geoportal/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, geoJSON string) (int64, error) {
	query :=
		`INSERT INTO geometries (geom)
		 VALUES (ST_SetSRID(ST_GeomFromGeoJSON($1), 4326))
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, geoJSON).Scan(&id)
	if err != nil {
		if isInvalidGeometry(err) {
			return 0, fmt.Errorf("%w: %w", common.ErrInvalidGeometry, err)
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

// isInvalidGeometry reports whether PostGIS refused the input itself:
// data exceptions (class 22) and the XX000 errors raised by the GeoJSON
// parser. Anything else is a store failure.
func isInvalidGeometry(err error) bool {
	var pge *pgconn.PgError
	if !errors.As(err, &pge) {
		return false
	}
	return strings.HasPrefix(pge.Code, "22") || pge.Code == "XX000"
}
