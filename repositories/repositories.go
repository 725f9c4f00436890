package repositories

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// Execer is satisfied by *sql.DB, *sql.Tx and *database.Scope
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Repositories struct holds all repository interfaces
type Repositories struct {
	Forms           FormRepository
	Workflows       WorkflowRepository
	Records         RecordRepository
	Audit           AuditRepository
	PreValueSources PreValueSourceRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Forms:           NewFormRepository(db),
		Workflows:       NewWorkflowRepository(db),
		Records:         NewRecordRepository(db),
		Audit:           NewAuditRepository(db),
		PreValueSources: NewPreValueSourceRepository(db),
	}
}
