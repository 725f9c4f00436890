package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrScopeCompleted is returned when a scope is used after Complete
var ErrScopeCompleted = errors.New("scope already completed")

// ScopeProvider creates transactional units of work
type ScopeProvider interface {
	CreateScope(ctx context.Context) (*Scope, error)
}

// Scope is a unit of work over one database transaction.
// Complete commits it; Close rolls back anything not completed.
type Scope struct {
	tx        *sql.Tx
	completed bool
}

type sqlScopeProvider struct {
	db *sql.DB
}

// NewScopeProvider creates a scope provider over the given connection
func NewScopeProvider(db *sql.DB) ScopeProvider {
	return &sqlScopeProvider{db: db}
}

// CreateScope begins a new transaction
func (p *sqlScopeProvider) CreateScope(ctx context.Context) (*Scope, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin scope: %w", err)
	}
	return &Scope{tx: tx}, nil
}

// ExecContext runs a statement inside the scope
func (s *Scope) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if s.completed {
		return nil, ErrScopeCompleted
	}
	return s.tx.ExecContext(ctx, query, args...)
}

// Complete commits the scope
func (s *Scope) Complete() error {
	if s.completed {
		return ErrScopeCompleted
	}
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("failed to complete scope: %w", err)
	}
	s.completed = true
	return nil
}

// Close rolls back the scope unless it was completed
func (s *Scope) Close() error {
	if s.completed {
		return nil
	}
	s.completed = true
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
