package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/repositories"
)

// RecordService interface defines record browsing for the backoffice
type RecordService interface {
	GetForms(ctx context.Context) ([]models.Form, error)
	GetRecordsByForm(ctx context.Context, formID uuid.UUID) ([]models.Record, error)
	GetRecord(ctx context.Context, recordID uuid.UUID) (*models.Record, error)
	GetAuditTrail(ctx context.Context, recordID uuid.UUID) ([]models.RecordWorkflowAudit, error)
}

// recordService implements RecordService interface
type recordService struct {
	formRepo   repositories.FormRepository
	recordRepo repositories.RecordRepository
	auditRepo  repositories.AuditRepository
}

// NewRecordService creates a new record service
func NewRecordService(formRepo repositories.FormRepository, recordRepo repositories.RecordRepository, auditRepo repositories.AuditRepository) RecordService {
	return &recordService{
		formRepo:   formRepo,
		recordRepo: recordRepo,
		auditRepo:  auditRepo,
	}
}

// GetForms retrieves all forms
func (s *recordService) GetForms(ctx context.Context) ([]models.Form, error) {
	return s.formRepo.GetAll(ctx)
}

// GetRecordsByForm retrieves the stored records of a form
func (s *recordService) GetRecordsByForm(ctx context.Context, formID uuid.UUID) ([]models.Record, error) {
	if _, err := s.formRepo.GetByID(ctx, formID); err != nil {
		return nil, err
	}
	return s.recordRepo.GetByForm(ctx, formID)
}

// GetRecord retrieves a record by its unique ID
func (s *recordService) GetRecord(ctx context.Context, recordID uuid.UUID) (*models.Record, error) {
	return s.recordRepo.GetByUniqueID(ctx, recordID)
}

// GetAuditTrail retrieves the workflow audit rows of a record.
// Records of forms that do not store locally have audit rows but no record row.
func (s *recordService) GetAuditTrail(ctx context.Context, recordID uuid.UUID) ([]models.RecordWorkflowAudit, error) {
	return s.auditRepo.GetByRecord(ctx, recordID)
}
