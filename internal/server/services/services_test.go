package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/geoportal/internal/server/storage"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, name string) (*storage.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.New(name, db), mock
}

// failingConnector never hands out a connection.
type failingConnector struct{ err error }

func (f failingConnector) Acquire(ctx context.Context) (*sql.Conn, func(), error) {
	return nil, nil, f.err
}

// countingConnector records how many connections were released.
type countingConnector struct {
	inner    Connector
	acquired int
	released int
}

func (c *countingConnector) Acquire(ctx context.Context) (*sql.Conn, func(), error) {
	conn, release, err := c.inner.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	c.acquired++
	return conn, func() {
		c.released++
		release()
	}, nil
}

var errDown = errors.New("connection refused")
