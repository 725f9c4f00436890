package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/tempdata"
	"github.com/rs/zerolog"
)

// TrackingWorkflowID is the type ID of the tracking workflow
var TrackingWorkflowID = uuid.MustParse("3a0c7d8e-52f1-4b6a-9e0d-6c1f2b7a4e91")

// TrackingSettings configures the tracking workflow
type TrackingSettings struct {
	TrackingFields string `setting:"TrackingFields" description:"Fields always kept on the tracking record, as a JSON list or separated by ;" view:"fieldpicker"`
}

// TrackingWorkflow stores a minimal copy of the submitted record holding
// only the tracked fields and fields that carry a value.
type TrackingWorkflow struct {
	records  RecordStorage
	audit    AuditWriter
	tempData tempdata.Provider
	logger   zerolog.Logger
	now      func() time.Time
}

// NewTrackingWorkflow creates the tracking workflow
func NewTrackingWorkflow(records RecordStorage, audit AuditWriter, tempData tempdata.Provider, logger zerolog.Logger) *TrackingWorkflow {
	return &TrackingWorkflow{
		records:  records,
		audit:    audit,
		tempData: tempData,
		logger:   logger.With().Str("workflow_type", "Tracking").Logger(),
		now:      time.Now,
	}
}

func (w *TrackingWorkflow) Type() models.WorkflowType {
	return models.WorkflowType{
		ID:          TrackingWorkflowID,
		Name:        "Tracking",
		Description: "Stores a tracking record with the selected fields",
		Icon:        "icon-navigation-road",
		Group:       "Storage",
		Settings:    DescribeSettings(TrackingSettings{}),
	}
}

// ValidateSettings accepts any settings; without tracking fields only valued fields are stored
func (w *TrackingWorkflow) ValidateSettings(_ *models.Workflow) models.ValidationErrors {
	return nil
}

func (w *TrackingWorkflow) Execute(ctx context.Context, ec *ExecutionContext) (status models.ExecutionStatus) {
	logger := w.logger
	if ec != nil && ec.Workflow != nil {
		logger = logger.With().Str("workflow", ec.Workflow.Name).Logger()
	}
	defer recoverStatus(logger, &status)

	if ec == nil || ec.Form == nil {
		logger.Warn().Msg("Form not found in workflow execution context")
		return models.ExecutionStatusFailed
	}
	if ec.Record == nil || ec.Workflow == nil {
		logger.Error().Msg("Record or workflow missing from execution context")
		return models.ExecutionStatusFailed
	}

	var settings TrackingSettings
	if err := BindSettings(&settings, ec.Workflow.Settings); err != nil {
		logger.Error().Err(err).Msg("Failed to read workflow settings")
		return models.ExecutionStatusFailed
	}

	record := w.buildRecord(ec, settings, logger)
	if err := w.records.Insert(ctx, record, ec.Form); err != nil {
		logger.Error().Err(err).
			Str("form_id", ec.Form.ID.String()).
			Str("record_id", ec.Record.UniqueID.String()).
			Msg("Failed to store tracking record")
		return models.ExecutionStatusFailed
	}

	if err := w.stage(ctx, record); err != nil {
		logger.Error().Err(err).Msg("Failed to stage tracking record in temp data")
		return models.ExecutionStatusFailed
	}

	w.audit.InsertAuditRecord(ctx, ec.Record, ec.Form, ec.Workflow, ec.Stage, models.ExecutionStatusCompleted)

	logger.Info().
		Str("record_id", record.UniqueID.String()).
		Int("fields", len(record.RecordFields)).
		Msg("Tracking record stored")
	return models.ExecutionStatusCompleted
}

// buildRecord copies the submission metadata and the fields worth keeping
func (w *TrackingWorkflow) buildRecord(ec *ExecutionContext, settings TrackingSettings, logger zerolog.Logger) *models.Record {
	source := ec.Record
	record := models.NewRecord(ec.Form.ID)
	now := w.now()
	record.Created = now
	record.Updated = now
	record.IP = source.IP
	record.Culture = source.Culture
	record.PageID = source.PageID
	record.MemberKey = source.MemberKey
	record.State = models.RecordStateSubmitted

	tracking, err := models.ParseTrackingFields(settings.TrackingFields)
	if err != nil {
		logger.Debug().Err(err).Msg("No tracking fields selected, storing valued fields only")
		tracking = nil
	}

	tracked, others := models.PartitionFields(ec.Form, tracking)
	for _, field := range tracked {
		values := []string{}
		if submitted, ok := source.GetRecordField(field.ID); ok {
			values = append(values, submitted.Values...)
		}
		record.RecordFields[field.ID] = models.NewRecordField(field, values)
	}
	for _, field := range others {
		if submitted, _ := source.GetRecordField(field.ID); submitted.HasValue() {
			record.RecordFields[field.ID] = models.NewRecordField(field, append([]string(nil), submitted.Values...))
		}
	}
	return record
}

func (w *TrackingWorkflow) stage(ctx context.Context, record *models.Record) error {
	store, ok := w.tempData.TempData(ctx)
	if !ok {
		return nil
	}
	if err := store.Set(tempdata.TrackingRecordIDKey, record.UniqueID.String()); err != nil {
		return fmt.Errorf("failed to stage tracking record id: %w", err)
	}
	if err := store.Set(tempdata.TrackingRecordIPKey, record.IP); err != nil {
		return fmt.Errorf("failed to stage tracking record ip: %w", err)
	}
	return nil
}

// recoverStatus turns a panic inside a workflow into a failed execution
func recoverStatus(logger zerolog.Logger, status *models.ExecutionStatus) {
	if r := recover(); r != nil {
		logger.Error().Interface("panic", r).Msg("Workflow execution panicked")
		*status = models.ExecutionStatusFailed
	}
}
