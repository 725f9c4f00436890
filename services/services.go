package services

import (
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/rs/zerolog"
)

// Services holds all service instances
type Services struct {
	Submissions SubmissionService
	Records     RecordService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, executor WorkflowExecutor, publisher ValidationPublisher, fieldTypes FieldTypeLookup, logger zerolog.Logger) *Services {
	return &Services{
		Submissions: NewSubmissionService(repos.Forms, repos.Records, executor, publisher, fieldTypes, logger),
		Records:     NewRecordService(repos.Forms, repos.Records, repos.Audit),
	}
}
