package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
)

// AuditRepository handles workflow audit trail persistence
type AuditRepository interface {
	// Insert writes an audit row through the given executor, usually a scope
	Insert(ctx context.Context, exec Execer, audit *models.RecordWorkflowAudit) error
	GetByRecord(ctx context.Context, recordUniqueID uuid.UUID) ([]models.RecordWorkflowAudit, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Insert inserts a new workflow audit entry
func (r *sqliteAuditRepository) Insert(ctx context.Context, exec Execer, audit *models.RecordWorkflowAudit) error {
	if exec == nil {
		exec = r.db
	}

	query := `
		INSERT INTO record_workflow_audit (record_unique_id, workflow_key, workflow_name, workflow_type_id,
		                                   workflow_type_name, executed_on, execution_stage, execution_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := exec.ExecContext(ctx, query,
		audit.RecordUniqueID,
		audit.WorkflowKey,
		audit.WorkflowName,
		audit.WorkflowTypeID,
		audit.WorkflowTypeName,
		audit.ExecutedOn,
		string(audit.ExecutionStage),
		string(audit.ExecutionStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to insert workflow audit: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		audit.ID = id
	}
	return nil
}

// GetByRecord retrieves the audit trail of a record in execution order
func (r *sqliteAuditRepository) GetByRecord(ctx context.Context, recordUniqueID uuid.UUID) ([]models.RecordWorkflowAudit, error) {
	query := `
		SELECT id, record_unique_id, workflow_key, workflow_name, workflow_type_id,
		       workflow_type_name, executed_on, execution_stage, execution_status
		FROM record_workflow_audit
		WHERE record_unique_id = ?
		ORDER BY executed_on ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, recordUniqueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflow audit: %w", err)
	}
	defer rows.Close()

	var audits []models.RecordWorkflowAudit
	for rows.Next() {
		var a models.RecordWorkflowAudit
		var stage, status string

		err := rows.Scan(
			&a.ID,
			&a.RecordUniqueID,
			&a.WorkflowKey,
			&a.WorkflowName,
			&a.WorkflowTypeID,
			&a.WorkflowTypeName,
			&a.ExecutedOn,
			&stage,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow audit: %w", err)
		}

		a.ExecutionStage = models.ExecutionStage(stage)
		a.ExecutionStatus = models.ExecutionStatus(status)
		audits = append(audits, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workflow audit: %w", err)
	}

	return audits, nil
}
