package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
)

// WorkflowRepository interface defines workflow configuration database operations
type WorkflowRepository interface {
	GetByForm(ctx context.Context, formID uuid.UUID) ([]models.Workflow, error)
	GetActiveByFormAndStage(ctx context.Context, formID uuid.UUID, stage models.ExecutionStage) ([]models.Workflow, error)
	Create(ctx context.Context, workflow *models.Workflow) error
}

// workflowRepository implements WorkflowRepository interface
type workflowRepository struct {
	db *sql.DB
}

// NewWorkflowRepository creates a new workflow repository
func NewWorkflowRepository(db *sql.DB) WorkflowRepository {
	return &workflowRepository{db: db}
}

const workflowColumns = `id, name, form_id, workflow_type_id, active, executes_on, sort_order, include_sensitive_data, settings`

// GetByForm retrieves all workflows attached to a form
func (r *workflowRepository) GetByForm(ctx context.Context, formID uuid.UUID) ([]models.Workflow, error) {
	query := `SELECT ` + workflowColumns + ` FROM workflows WHERE form_id = ? ORDER BY sort_order ASC, name ASC`
	return r.query(ctx, query, formID)
}

// GetActiveByFormAndStage retrieves the active workflows of a form for one stage
func (r *workflowRepository) GetActiveByFormAndStage(ctx context.Context, formID uuid.UUID, stage models.ExecutionStage) ([]models.Workflow, error) {
	query := `SELECT ` + workflowColumns + ` FROM workflows
		WHERE form_id = ? AND executes_on = ? AND active = 1
		ORDER BY sort_order ASC, name ASC`
	return r.query(ctx, query, formID, string(stage))
}

func (r *workflowRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Workflow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflows: %w", err)
	}
	defer rows.Close()

	var workflows []models.Workflow
	for rows.Next() {
		var wf models.Workflow
		var stage, settings string

		err := rows.Scan(
			&wf.ID,
			&wf.Name,
			&wf.FormID,
			&wf.WorkflowTypeID,
			&wf.Active,
			&stage,
			&wf.SortOrder,
			&wf.IncludeSensitiveData,
			&settings,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow: %w", err)
		}

		wf.ExecutesOn = models.ExecutionStage(stage)
		if err := json.Unmarshal([]byte(settings), &wf.Settings); err != nil {
			return nil, fmt.Errorf("failed to decode settings of workflow %s: %w", wf.ID, err)
		}

		workflows = append(workflows, wf)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workflows: %w", err)
	}

	return workflows, nil
}

// Create stores a workflow configuration
func (r *workflowRepository) Create(ctx context.Context, workflow *models.Workflow) error {
	if workflow.ID == uuid.Nil {
		workflow.ID = uuid.New()
	}
	if workflow.ExecutesOn == "" {
		workflow.ExecutesOn = models.ExecutionStageSubmitted
	}

	settings, err := json.Marshal(workflow.Settings)
	if err != nil {
		return fmt.Errorf("failed to encode workflow settings: %w", err)
	}
	if workflow.Settings == nil {
		settings = []byte("{}")
	}

	query := `
		INSERT INTO workflows (` + workflowColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		workflow.ID,
		workflow.Name,
		workflow.FormID,
		workflow.WorkflowTypeID,
		workflow.Active,
		string(workflow.ExecutesOn),
		workflow.SortOrder,
		workflow.IncludeSensitiveData,
		string(settings),
	)
	if err != nil {
		return fmt.Errorf("failed to create workflow: %w", err)
	}

	return nil
}
