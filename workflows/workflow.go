package workflows

import (
	"context"
	"os"

	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/rendering"
)

// Workflow is a pluggable action run against a submitted record.
// Implementations report failures through the returned status and never
// propagate errors to the host.
type Workflow interface {
	// Type describes the workflow type and its settings
	Type() models.WorkflowType

	// ValidateSettings checks the stored settings of a configured workflow
	ValidateSettings(workflow *models.Workflow) models.ValidationErrors

	// Execute runs the workflow
	Execute(ctx context.Context, ec *ExecutionContext) models.ExecutionStatus
}

// ExecutionContext carries what a workflow needs about the current submission
type ExecutionContext struct {
	Record   *models.Record
	Form     *models.Form
	Workflow *models.Workflow
	Stage    models.ExecutionStage
	Content  *rendering.ContentContext
}

// RecordStorage persists records
type RecordStorage interface {
	Insert(ctx context.Context, record *models.Record, form *models.Form) error
}

// AuditWriter records the outcome of a workflow execution
type AuditWriter interface {
	InsertAuditRecord(ctx context.Context, record *models.Record, form *models.Form, workflow *models.Workflow, stage models.ExecutionStage, status models.ExecutionStatus)
}

// MediaFileSystem is the media store uploaded files live in
type MediaFileSystem interface {
	GetRelativePath(p string) string
	GetFullPath(rel string) (string, error)
	FileExists(rel string) bool
	OpenFile(rel string) (*os.File, error)
	DeleteFiles(paths []string) error
	DeleteDirectory(rel string) error
}

// TemplateRenderer renders email views
type TemplateRenderer interface {
	Exists(viewPath string) bool
	Render(viewPath string, model interface{}) (string, error)
}

// PreValueResolver resolves the pre-values of a field
type PreValueResolver interface {
	Resolve(ctx context.Context, field *models.Field) ([]models.PreValue, error)
}

// FieldTypes answers questions about registered field types
type FieldTypes interface {
	Name(id string) string
	SupportsUploadTypes(id string) bool
	SupportsPreValues(id string) bool
}
