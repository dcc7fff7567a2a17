package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staffing/internal/logger"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// newPingableMock returns a sqlmock connection that records Ping calls.
func newPingableMock() (*sql.DB, sqlmock.Sqlmock, error) {
	return sqlmock.New(sqlmock.MonitorPingsOption(true))
}
