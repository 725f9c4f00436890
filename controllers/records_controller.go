package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/jpkuehn/S3.Forms/services"
	"github.com/jpkuehn/S3.Forms/workflows"
)

// RecordsController serves stored records and workflow audit trails to backoffice users
type RecordsController struct {
	services *services.Services
	registry *workflows.Registry
}

// NewRecordsController creates a new records controller
func NewRecordsController(services *services.Services, registry *workflows.Registry) *RecordsController {
	return &RecordsController{
		services: services,
		registry: registry,
	}
}

// Forms handles GET /backoffice/forms
func (c *RecordsController) Forms(w http.ResponseWriter, r *http.Request) {
	forms, err := c.services.Records.GetForms(r.Context())
	if err != nil {
		http.Error(w, "Failed to load forms: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, forms)
}

// WorkflowTypes handles GET /backoffice/workflow-types
func (c *RecordsController) WorkflowTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.registry.Types())
}

// Records handles GET /backoffice/forms/{formID}/records
func (c *RecordsController) Records(w http.ResponseWriter, r *http.Request) {
	formID, ok := parseID(w, r, "formID")
	if !ok {
		return
	}

	records, err := c.services.Records.GetRecordsByForm(r.Context(), formID)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Form not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load records: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Record handles GET /backoffice/records/{recordID}
func (c *RecordsController) Record(w http.ResponseWriter, r *http.Request) {
	recordID, ok := parseID(w, r, "recordID")
	if !ok {
		return
	}

	record, err := c.services.Records.GetRecord(r.Context(), recordID)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load record: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Audit handles GET /backoffice/records/{recordID}/audit
func (c *RecordsController) Audit(w http.ResponseWriter, r *http.Request) {
	recordID, ok := parseID(w, r, "recordID")
	if !ok {
		return
	}

	trail, err := c.services.Records.GetAuditTrail(r.Context(), recordID)
	if err != nil {
		http.Error(w, "Failed to load audit trail: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, trail)
}

// parseID reads a UUID URL parameter, writing a 400 response when it is malformed
func parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
