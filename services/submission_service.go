package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/fieldtypes"
	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/notifications"
	"github.com/jpkuehn/S3.Forms/rendering"
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/jpkuehn/S3.Forms/workflows"
	"github.com/rs/zerolog"
)

// Submission is a form post as received from a visitor
type Submission struct {
	FormID uuid.UUID
	// Values are keyed by field ID or alias
	Values map[string][]string
	// Uploads holds the media URLs of files stored for this submission, keyed like Values.
	// Upload fields only ever take their values from here.
	Uploads   map[string][]string
	IP        string
	Culture   string
	PageID    int
	MemberKey string
	Preview   bool
}

// SubmissionResult reports what happened to a submission
type SubmissionResult struct {
	Valid     bool                        `json:"valid"`
	RecordID  uuid.UUID                   `json:"record_id,omitempty"`
	Errors    notifications.ModelState    `json:"errors,omitempty"`
	Workflows []workflows.ExecutionResult `json:"workflows,omitempty"`
}

// SubmissionService interface defines form submission business logic
type SubmissionService interface {
	Submit(ctx context.Context, submission *Submission) (*SubmissionResult, error)
}

// WorkflowExecutor runs the workflows configured for a form
type WorkflowExecutor interface {
	Execute(ctx context.Context, record *models.Record, form *models.Form, stage models.ExecutionStage, content *rendering.ContentContext) ([]workflows.ExecutionResult, error)
}

// ValidationPublisher publishes validation results
type ValidationPublisher interface {
	Publish(ctx context.Context, n *notifications.FormValidateNotification) error
}

// FieldTypeLookup resolves field type definitions
type FieldTypeLookup interface {
	Get(id string) (fieldtypes.FieldType, bool)
}

// submissionService implements SubmissionService interface
type submissionService struct {
	formRepo   repositories.FormRepository
	recordRepo repositories.RecordRepository
	executor   WorkflowExecutor
	publisher  ValidationPublisher
	fieldTypes FieldTypeLookup
	logger     zerolog.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(formRepo repositories.FormRepository, recordRepo repositories.RecordRepository, executor WorkflowExecutor, publisher ValidationPublisher, fieldTypes FieldTypeLookup, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		formRepo:   formRepo,
		recordRepo: recordRepo,
		executor:   executor,
		publisher:  publisher,
		fieldTypes: fieldTypes,
		logger:     logger,
	}
}

// Submit validates a submission, stores the record when the form keeps
// records locally and runs the form's submitted workflows
func (s *submissionService) Submit(ctx context.Context, submission *Submission) (*SubmissionResult, error) {
	form, err := s.formRepo.GetByID(ctx, submission.FormID)
	if err != nil {
		return nil, err
	}

	state := s.validate(form, submission)
	if err := s.publisher.Publish(ctx, &notifications.FormValidateNotification{Form: form, ModelState: state}); err != nil {
		s.logger.Warn().Err(err).Str("form_id", form.ID.String()).Msg("Validation notification failed")
	}
	if !state.IsValid() {
		return &SubmissionResult{Valid: false, Errors: invalidOnly(state)}, nil
	}

	record := s.buildRecord(form, submission)
	if form.StoreRecordsLocally {
		if err := s.recordRepo.Insert(ctx, record, form); err != nil {
			return nil, fmt.Errorf("failed to store record: %w", err)
		}
	}

	results, err := s.executor.Execute(ctx, record, form, models.ExecutionStageSubmitted, rendering.NewContentContext(submission.Preview))
	if err != nil {
		return nil, fmt.Errorf("failed to execute workflows: %w", err)
	}

	s.logger.Info().
		Str("form_id", form.ID.String()).
		Str("record_id", record.UniqueID.String()).
		Bool("stored", form.StoreRecordsLocally).
		Int("workflows", len(results)).
		Msg("Form submitted")

	return &SubmissionResult{Valid: true, RecordID: record.UniqueID, Workflows: results}, nil
}

// validate checks mandatory and regex rules, keyed by field ID
func (s *submissionService) validate(form *models.Form, submission *Submission) notifications.ModelState {
	state := make(notifications.ModelState)
	for _, field := range form.Fields {
		if !s.storesData(field) {
			continue
		}
		key := field.ID.String()
		submitted := s.submittedValues(field, submission)
		state[key] = &notifications.ModelStateEntry{AttemptedValue: submitted}

		if field.Mandatory && !hasValue(submitted) {
			state.AddError(key, message(field.RequiredErrorMessage, "'%s' is mandatory", field.Caption))
			continue
		}

		if field.RegEx == "" || !hasValue(submitted) {
			continue
		}
		re, err := regexp.Compile(field.RegEx)
		if err != nil {
			s.logger.Warn().Err(err).Str("field", field.Alias).Msg("Invalid field validation pattern")
			continue
		}
		for _, v := range submitted {
			if v != "" && !re.MatchString(v) {
				state.AddError(key, message(field.InvalidErrorMessage, "'%s' is not valid", field.Caption))
				break
			}
		}
	}
	return state
}

// buildRecord creates the record for a valid submission
func (s *submissionService) buildRecord(form *models.Form, submission *Submission) *models.Record {
	record := models.NewRecord(form.ID)
	record.IP = submission.IP
	record.Culture = submission.Culture
	record.PageID = submission.PageID
	record.MemberKey = submission.MemberKey

	for _, field := range form.Fields {
		if !s.storesData(field) {
			continue
		}
		if submitted := s.submittedValues(field, submission); submitted != nil {
			record.RecordFields[field.ID] = models.NewRecordField(field, submitted)
		}
	}
	return record
}

func (s *submissionService) storesData(field *models.Field) bool {
	fieldType, ok := s.fieldTypes.Get(field.FieldTypeID)
	return !ok || fieldType.HasData()
}

// submittedValues returns the values posted for a field. Upload fields only
// accept the URLs of files stored by the server, never posted text.
func (s *submissionService) submittedValues(field *models.Field, submission *Submission) []string {
	fieldType, ok := s.fieldTypes.Get(field.FieldTypeID)
	if ok && fieldType.SupportsUploadTypes {
		return fieldValues(field, submission.Uploads)
	}
	return fieldValues(field, submission.Values)
}

// fieldValues returns the trimmed values posted for a field, by ID first then alias
func fieldValues(field *models.Field, values map[string][]string) []string {
	raw, ok := values[field.ID.String()]
	if !ok {
		raw, ok = values[field.Alias]
	}
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

func hasValue(values []string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}

func message(custom, format, caption string) string {
	if strings.TrimSpace(custom) != "" {
		return custom
	}
	return fmt.Sprintf(format, caption)
}

func invalidOnly(state notifications.ModelState) notifications.ModelState {
	out := make(notifications.ModelState)
	for _, key := range state.InvalidKeys() {
		out[key] = state[key]
	}
	return out
}
