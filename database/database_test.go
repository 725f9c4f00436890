package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, InitializeDatabase(dbPath))
	t.Cleanup(func() { CloseDB() })

	// Running migrations a second time is a no-op
	require.NoError(t, RunMigrations(GetDB()))

	var count int
	require.NoError(t, GetDB().QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)

	for _, table := range []string{"forms", "form_fields", "workflows", "records", "record_fields", "record_workflow_audit"} {
		var name string
		err := GetDB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestScopeComplete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO record_workflow_audit").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	scope, err := NewScopeProvider(db).CreateScope(ctx)
	require.NoError(t, err)

	_, err = scope.ExecContext(ctx, "INSERT INTO record_workflow_audit (id) VALUES (?)", 1)
	require.NoError(t, err)
	require.NoError(t, scope.Complete())

	// Close after Complete does not roll back
	assert.NoError(t, scope.Close())
	assert.ErrorIs(t, scope.Complete(), ErrScopeCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScopeCloseRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	ctx := context.Background()
	scope, err := NewScopeProvider(db).CreateScope(ctx)
	require.NoError(t, err)

	_, err = scope.ExecContext(ctx, "INSERT INTO record_workflow_audit (id) VALUES (?)", 1)
	assert.Error(t, err)
	assert.NoError(t, scope.Close())

	_, err = scope.ExecContext(ctx, "INSERT INTO record_workflow_audit (id) VALUES (?)", 1)
	assert.ErrorIs(t, err, ErrScopeCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDataSourceName(t *testing.T) {
	assert.Equal(t, "file:forms.db?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", DataSourceName("forms.db"))
	assert.Equal(t, ":memory:", DataSourceName(":memory:"))
	assert.Equal(t, "file:x.db?mode=ro", DataSourceName("file:x.db?mode=ro"))
}

func TestForeignKeysEnabled(t *testing.T) {
	require.NoError(t, OpenDB(filepath.Join(t.TempDir(), "fk.db")))
	t.Cleanup(func() { CloseDB() })

	var fk int
	require.NoError(t, GetDB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}
