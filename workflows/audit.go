package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/database"
	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/rs/zerolog"
)

// TypeLookup resolves workflow type descriptors by ID
type TypeLookup interface {
	WorkflowType(typeID uuid.UUID) (models.WorkflowType, bool)
}

// AuditHelper writes workflow audit rows for forms that do not store
// records locally. For forms that do, the host writes the row itself.
type AuditHelper struct {
	scopes database.ScopeProvider
	audits repositories.AuditRepository
	types  TypeLookup
	logger zerolog.Logger
	now    func() time.Time
}

// NewAuditHelper creates an audit helper
func NewAuditHelper(scopes database.ScopeProvider, audits repositories.AuditRepository, types TypeLookup, logger zerolog.Logger) *AuditHelper {
	return &AuditHelper{
		scopes: scopes,
		audits: audits,
		types:  types,
		logger: logger,
		now:    time.Now,
	}
}

// InsertAuditRecord writes one audit row for the workflow execution.
// Failures are logged and never returned.
func (h *AuditHelper) InsertAuditRecord(ctx context.Context, record *models.Record, form *models.Form, workflow *models.Workflow, stage models.ExecutionStage, status models.ExecutionStatus) {
	if form == nil || form.StoreRecordsLocally {
		return
	}

	if err := h.insert(ctx, record, form, workflow, stage, status); err != nil {
		event := h.logger.Error().Err(err).
			Str("form_name", form.Name).
			Str("form_id", form.ID.String()).
			Str("stage", string(stage))
		if workflow != nil {
			event = event.Str("workflow", workflow.Name)
		}
		if record != nil {
			event = event.Str("record_id", record.UniqueID.String()).
				Str("form_state", string(record.State))
		}
		event.Msg("Failed to insert workflow audit record")
	}
}

func (h *AuditHelper) insert(ctx context.Context, record *models.Record, form *models.Form, workflow *models.Workflow, stage models.ExecutionStage, status models.ExecutionStatus) error {
	if record == nil || workflow == nil {
		return fmt.Errorf("record and workflow are required")
	}

	workflowType, ok := h.types.WorkflowType(workflow.WorkflowTypeID)
	if !ok {
		return fmt.Errorf("workflow type %s is not registered", workflow.WorkflowTypeID)
	}

	scope, err := h.scopes.CreateScope(ctx)
	if err != nil {
		return err
	}
	defer scope.Close()

	audit := &models.RecordWorkflowAudit{
		RecordUniqueID:   record.UniqueID,
		WorkflowKey:      workflow.ID,
		WorkflowName:     workflow.Name,
		WorkflowTypeID:   workflowType.ID,
		WorkflowTypeName: workflowType.Name,
		ExecutedOn:       h.now(),
		ExecutionStage:   stage,
		ExecutionStatus:  status,
	}
	if err := h.audits.Insert(ctx, scope, audit); err != nil {
		return err
	}

	if err := scope.Complete(); err != nil {
		return fmt.Errorf("failed to complete audit scope: %w", err)
	}

	h.logger.Debug().
		Str("workflow", workflow.Name).
		Str("record_id", record.UniqueID.String()).
		Str("status", string(status)).
		Msg("Workflow audit record inserted")
	return nil
}
