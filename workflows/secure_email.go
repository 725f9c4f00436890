package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/mailer"
	"github.com/jpkuehn/S3.Forms/models"
	"github.com/rs/zerolog"
)

// SecureEmailWorkflowID is the type ID of the secure email workflow
var SecureEmailWorkflowID = uuid.MustParse("c1d2a6f0-7b3e-4d59-8a14-0e6b9f2d5c37")

// SecureEmailEmailType tags messages sent by the secure email workflow
const SecureEmailEmailType = "SecureEmailWorkflow"

// SecureEmailWorkflowSettings configures the secure email workflow
type SecureEmailWorkflowSettings struct {
	SecureEmailSettings
	RazorViewFilePath string `setting:"RazorViewFilePath" description:"Email template, relative to the templates folder" view:"templatepicker"`
	HeaderHTML        string `setting:"HeaderHtml" description:"HTML placed above the submitted fields" view:"richtext"`
	FooterHTML        string `setting:"FooterHtml" description:"HTML placed below the submitted fields" view:"richtext"`
	Attachment        bool   `setting:"Attachment" description:"Attach uploaded files to the email"`
}

// Validate reports missing required settings
func (s SecureEmailWorkflowSettings) Validate() models.ValidationErrors {
	errs := s.SecureEmailSettings.Validate()
	if strings.TrimSpace(s.RazorViewFilePath) == "" {
		errs = append(errs, models.RequiredSetting("RazorViewFilePath"))
	}
	return errs
}

// SecureEmailWorkflow renders the submission through an email template and
// sends it, optionally signed and with the uploaded files attached.
// Attached uploads are deleted once the send completes.
type SecureEmailWorkflow struct {
	*SecureEmailBase
	renderer   TemplateRenderer
	viewModels templateModelBuilder
	audit      AuditWriter
	logger     zerolog.Logger
}

// NewSecureEmailWorkflow creates the secure email workflow
func NewSecureEmailWorkflow(base *SecureEmailBase, renderer TemplateRenderer, fieldTypes FieldTypes, preValues PreValueResolver, audit AuditWriter, logger zerolog.Logger) *SecureEmailWorkflow {
	return &SecureEmailWorkflow{
		SecureEmailBase: base,
		renderer:        renderer,
		viewModels:      templateModelBuilder{fieldTypes: fieldTypes, preValues: preValues},
		audit:           audit,
		logger:          logger.With().Str("workflow_type", "SecureEmail").Logger(),
	}
}

func (w *SecureEmailWorkflow) Type() models.WorkflowType {
	return models.WorkflowType{
		ID:          SecureEmailWorkflowID,
		Name:        "Send secure email",
		Description: "Sends the submission as a templated email, optionally signed and with uploads attached",
		Icon:        "icon-message",
		Group:       "Email",
		Settings:    DescribeSettings(SecureEmailWorkflowSettings{}),
	}
}

func (w *SecureEmailWorkflow) ValidateSettings(workflow *models.Workflow) models.ValidationErrors {
	var settings SecureEmailWorkflowSettings
	if err := BindSettings(&settings, workflow.Settings); err != nil {
		return models.ValidationErrors{{Field: "Settings", Message: err.Error()}}
	}
	return settings.Validate()
}

func (w *SecureEmailWorkflow) Execute(ctx context.Context, ec *ExecutionContext) (status models.ExecutionStatus) {
	logger := w.logger
	if ec != nil && ec.Workflow != nil {
		logger = logger.With().Str("workflow", ec.Workflow.Name).Logger()
	}
	defer recoverStatus(logger, &status)

	if ec == nil || ec.Form == nil {
		logger.Warn().Msg("Form not found in workflow execution context")
		return models.ExecutionStatusFailed
	}
	if ec.Record == nil || ec.Workflow == nil || ec.Content == nil {
		logger.Error().Msg("Record, workflow or content context missing from execution context")
		return models.ExecutionStatusFailed
	}
	logger = logger.With().
		Str("form_id", ec.Form.ID.String()).
		Str("record_id", ec.Record.UniqueID.String()).
		Logger()

	var settings SecureEmailWorkflowSettings
	if err := BindSettings(&settings, ec.Workflow.Settings); err != nil {
		logger.Error().Err(err).Msg("Failed to read workflow settings")
		return models.ExecutionStatusFailed
	}
	if errs := settings.Validate(); errs.HasErrors() {
		logger.Error().Strs("errors", errs.GetMessages()).Msg("Workflow settings are not valid")
		return models.ExecutionStatusFailed
	}

	if !w.renderer.Exists(settings.RazorViewFilePath) {
		logger.Error().Str("template", settings.RazorViewFilePath).Msg("Email template not found")
		return models.ExecutionStatusFailed
	}

	body, err := w.render(ctx, ec, settings)
	if err != nil {
		logger.Error().Err(err).Str("template", settings.RazorViewFilePath).Msg("Failed to render email template")
		return models.ExecutionStatusFailed
	}

	session := w.NewAttachmentSession(logger)
	defer func() {
		if !session.Closed() {
			w.cleanup(session, logger)
		}
	}()

	if settings.Attachment {
		w.collectAttachments(ec, session)
	}

	if !w.mailer.CanSendRequiredEmail() {
		logger.Error().Err(mailer.ErrSendNotPermitted).Msg("Email transport is not configured")
		return models.ExecutionStatusFailed
	}

	msg, err := w.mailer.AssembleMessage(settings.MessageArgs(ec.Record, body, session.Attachments()))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to assemble email")
		return models.ExecutionStatusFailed
	}
	if msg == nil {
		logger.Error().Msg("Mail transport returned no message")
		return models.ExecutionStatusFailed
	}

	sendErr := w.mailer.Send(ctx, msg, SecureEmailEmailType)
	w.cleanup(session, logger)
	if sendErr != nil {
		logger.Error().Err(sendErr).Msg("Failed to send email")
		return models.ExecutionStatusFailed
	}

	w.audit.InsertAuditRecord(ctx, ec.Record, ec.Form, ec.Workflow, ec.Stage, models.ExecutionStatusCompleted)

	logger.Info().
		Int("attachments", len(session.Paths())).
		Bool("signed", settings.SignEmail).
		Msg("Secure email sent")
	return models.ExecutionStatusCompleted
}

// render renders the email body with preview mode switched off.
// Preview mode is restored only when rendering succeeds.
func (w *SecureEmailWorkflow) render(ctx context.Context, ec *ExecutionContext, settings SecureEmailWorkflowSettings) (string, error) {
	model, err := w.viewModels.build(ctx, ec, settings.HeaderHTML, settings.FooterHTML, SettingsMap(settings))
	if err != nil {
		return "", err
	}

	preview := ec.Content.InPreviewMode()
	ec.Content.ForcePreviewMode(false)

	body, err := w.renderer.Render(settings.RazorViewFilePath, model)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", settings.RazorViewFilePath, err)
	}

	ec.Content.ForcePreviewMode(preview)
	return body, nil
}

// collectAttachments adds every stored upload of the record's file upload fields
func (w *SecureEmailWorkflow) collectAttachments(ec *ExecutionContext, session *AttachmentSession) {
	for _, field := range ec.Form.Fields {
		if !w.viewModels.fieldTypes.SupportsUploadTypes(field.FieldTypeID) {
			continue
		}
		rf, ok := ec.Record.GetRecordField(field.ID)
		if !ok {
			continue
		}
		for _, value := range rf.Values {
			if strings.TrimSpace(value) == "" {
				continue
			}
			session.TryCreateAttachment(value)
		}
	}
}

func (w *SecureEmailWorkflow) cleanup(session *AttachmentSession, logger zerolog.Logger) {
	if err := session.Cleanup(); err != nil {
		logger.Warn().Err(err).Msg("Failed to clean up email attachments")
	}
}
