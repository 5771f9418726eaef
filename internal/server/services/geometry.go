package services

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/geoportal/internal/common"
	"github.com/dmitrijs2005/geoportal/internal/dbx"
	"github.com/dmitrijs2005/geoportal/internal/server/repositories/repomanager"
)

// GeometryService stores user-drawn geometries in the spatial database.
type GeometryService struct {
	store       Connector
	repomanager repomanager.RepositoryManager
}

func NewGeometryService(store Connector, m repomanager.RepositoryManager) *GeometryService {
	return &GeometryService{store: store, repomanager: m}
}

// Save inserts geometry (GeoJSON text) in its own transaction and returns the
// new row id. The transaction is rolled back on any failure and the
// connection is released on every path.
//
// A missing or null geometry yields common.ErrorNoGeometry. Input rejected
// by PostGIS matches common.ErrInvalidGeometry.
func (s *GeometryService) Save(ctx context.Context, geometry json.RawMessage) (int64, error) {
	if isAbsent(geometry) {
		return 0, common.ErrorNoGeometry
	}

	conn, release, err := s.store.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	var id int64
	err = dbx.WithTx(ctx, conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		id, err = s.repomanager.Geometries(tx).Create(ctx, string(geometry))
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
