package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/rendering"
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/rs/zerolog"
)

// ExecutionResult is the outcome of one configured workflow
type ExecutionResult struct {
	WorkflowID   uuid.UUID                `json:"workflow_id"`
	WorkflowName string                   `json:"workflow_name"`
	Status       models.ExecutionStatus   `json:"status"`
	Errors       []models.ValidationError `json:"errors,omitempty"`
}

// Executor runs the active workflows of a form for a record stage
type Executor struct {
	registry  *Registry
	workflows repositories.WorkflowRepository
	audits    repositories.AuditRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewExecutor creates a workflow executor
func NewExecutor(registry *Registry, workflows repositories.WorkflowRepository, audits repositories.AuditRepository, logger zerolog.Logger) *Executor {
	return &Executor{
		registry:  registry,
		workflows: workflows,
		audits:    audits,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute runs every active workflow attached to the stage in sort order.
// Workflows with invalid settings are reported as NotValid and not run.
// For forms storing records locally the audit row is written here.
func (e *Executor) Execute(ctx context.Context, record *models.Record, form *models.Form, stage models.ExecutionStage, content *rendering.ContentContext) ([]ExecutionResult, error) {
	configured, err := e.workflows.GetActiveByFormAndStage(ctx, form.ID, stage)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflows: %w", err)
	}
	if content == nil {
		content = rendering.NewContentContext(false)
	}

	results := make([]ExecutionResult, 0, len(configured))
	for i := range configured {
		wf := &configured[i]
		result := ExecutionResult{WorkflowID: wf.ID, WorkflowName: wf.Name}

		impl, ok := e.registry.Get(wf.WorkflowTypeID)
		if !ok {
			e.logger.Warn().
				Str("workflow", wf.Name).
				Str("workflow_type_id", wf.WorkflowTypeID.String()).
				Msg("Workflow type is not registered, skipping")
			continue
		}

		if errs := impl.ValidateSettings(wf); errs.HasErrors() {
			result.Status = models.ExecutionStatusNotValid
			result.Errors = errs
			e.logger.Warn().
				Str("workflow", wf.Name).
				Strs("errors", errs.GetMessages()).
				Msg("Workflow settings are not valid")
		} else {
			result.Status = impl.Execute(ctx, &ExecutionContext{
				Record:   record,
				Form:     form,
				Workflow: wf,
				Stage:    stage,
				Content:  content,
			})
		}

		if form.StoreRecordsLocally {
			e.writeAudit(ctx, record, wf, impl.Type(), stage, result.Status)
		}

		e.logger.Info().
			Str("workflow", wf.Name).
			Str("record_id", record.UniqueID.String()).
			Str("status", string(result.Status)).
			Msg("Workflow executed")
		results = append(results, result)
	}
	return results, nil
}

func (e *Executor) writeAudit(ctx context.Context, record *models.Record, wf *models.Workflow, wfType models.WorkflowType, stage models.ExecutionStage, status models.ExecutionStatus) {
	audit := &models.RecordWorkflowAudit{
		RecordUniqueID:   record.UniqueID,
		WorkflowKey:      wf.ID,
		WorkflowName:     wf.Name,
		WorkflowTypeID:   wfType.ID,
		WorkflowTypeName: wfType.Name,
		ExecutedOn:       e.now(),
		ExecutionStage:   stage,
		ExecutionStatus:  status,
	}
	if err := e.audits.Insert(ctx, nil, audit); err != nil {
		e.logger.Error().Err(err).
			Str("workflow", wf.Name).
			Str("record_id", record.UniqueID.String()).
			Msg("Failed to insert workflow audit record")
	}
}
