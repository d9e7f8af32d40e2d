package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"

	dbpkg "github.com/mnystrom/floorgate/internal/db"
)

// openTestDB returns an in-memory SQLite connection with the same
// PRAGMAs and schema as production. Closed automatically when the test
// finishes.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Each test gets a unique in-memory database; shared cache keeps it
	// alive for the lifetime of the connection pool.
	dsn := fmt.Sprintf(
		"file:test_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		t.Name(),
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("openTestDB: sql.Open: %v", err)
	}

	// Match production: single connection.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.Ping(); err != nil {
		conn.Close()
		t.Fatalf("openTestDB: ping: %v", err)
	}

	if err := dbpkg.Migrate(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("openTestDB: migrate: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// newTestWriter returns a single-writer loop backed by conn, closed
// automatically when the test finishes.
func newTestWriter(t *testing.T, conn *sql.DB) *dbpkg.Writer {
	t.Helper()

	w := dbpkg.NewWriter(conn)
	t.Cleanup(func() { w.Close() })
	return w
}
