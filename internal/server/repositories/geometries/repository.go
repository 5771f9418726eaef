package geometries

import "context"

type Repository interface {
	// Create stores a GeoJSON geometry tagged with SRID 4326 and returns
	// the id assigned by the database.
	Create(ctx context.Context, geoJSON string) (int64, error)
}
