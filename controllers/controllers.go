package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jpkuehn/S3.Forms/services"
	"github.com/jpkuehn/S3.Forms/tempdata"
	"github.com/jpkuehn/S3.Forms/workflows"
	"github.com/rs/zerolog"
)

// writeJSON writes data as a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}

// UploadStore stores files posted with a submission
type UploadStore interface {
	AddFile(rel string, r io.Reader) error
	DeleteFiles(paths []string) error
	URL(rel string) string
}

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Forms   *FormsController
	Records *RecordsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, registry *workflows.Registry, uploads UploadStore, uploadsPath string, tempData tempdata.Provider, logger zerolog.Logger) *Controllers {
	return &Controllers{
		Auth:    NewAuthController(logger),
		Forms:   NewFormsController(services, uploads, uploadsPath, tempData, logger),
		Records: NewRecordsController(services, registry),
	}
}
