package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/jpkuehn/S3.Forms/services"
	"github.com/jpkuehn/S3.Forms/tempdata"
	"github.com/jpkuehn/S3.Forms/userctx"
	"github.com/rs/zerolog"
)

const maxUploadMemory = 32 << 20

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FormsController handles visitor form submissions
type FormsController struct {
	services    *services.Services
	uploads     UploadStore
	uploadsPath string
	tempData    tempdata.Provider
	logger      zerolog.Logger
}

// NewFormsController creates a new forms controller
func NewFormsController(services *services.Services, uploads UploadStore, uploadsPath string, tempData tempdata.Provider, logger zerolog.Logger) *FormsController {
	return &FormsController{
		services:    services,
		uploads:     uploads,
		uploadsPath: strings.Trim(filepath.ToSlash(uploadsPath), "/"),
		tempData:    tempData,
		logger:      logger,
	}
}

// Submit handles POST /forms/{formID}
func (c *FormsController) Submit(w http.ResponseWriter, r *http.Request) {
	formID, err := uuid.Parse(chi.URLParam(r, "formID"))
	if err != nil {
		http.Error(w, "Invalid form ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	values := make(map[string][]string)
	for key, v := range r.PostForm {
		values[key] = v
	}

	// Posted text never stands in for a file; only stored uploads reach Uploads
	uploads := make(map[string][]string)
	var saved []string
	if r.MultipartForm != nil {
		for key, headers := range r.MultipartForm.File {
			for _, header := range headers {
				rel, err := c.saveUpload(formID, header)
				if err != nil {
					c.discardUploads(saved)
					http.Error(w, "Failed to store upload: "+err.Error(), http.StatusInternalServerError)
					return
				}
				saved = append(saved, rel)
				uploads[key] = append(uploads[key], c.uploads.URL(rel))
			}
		}
	}

	pageID, _ := strconv.Atoi(r.FormValue("pageId"))
	ctx := r.Context()
	result, err := c.services.Submissions.Submit(ctx, &services.Submission{
		FormID:    formID,
		Values:    values,
		Uploads:   uploads,
		IP:        userctx.GetClientIP(ctx),
		Culture:   userctx.GetCulture(ctx),
		MemberKey: userctx.GetMemberKey(ctx),
		PageID:    pageID,
		Preview:   r.URL.Query().Get("preview") == "true",
	})
	if errors.Is(err, repositories.ErrNotFound) {
		c.discardUploads(saved)
		http.Error(w, "Form not found", http.StatusNotFound)
		return
	}
	if err != nil {
		c.discardUploads(saved)
		c.logger.Error().Err(err).Str("form_id", formID.String()).Msg("Failed to process submission")
		http.Error(w, "Failed to process submission: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if !result.Valid {
		c.discardUploads(saved)
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// State handles GET /forms/{formID}/state, returning what the last submission staged for the form view
func (c *FormsController) State(w http.ResponseWriter, r *http.Request) {
	state := make(map[string]interface{})
	if store, ok := c.tempData.TempData(r.Context()); ok {
		for _, key := range []string{
			tempdata.FormErrorFieldsKey,
			tempdata.AriaInvalidKey,
			tempdata.FocusFirstErrorKey,
			tempdata.TrackingRecordIDKey,
			tempdata.TrackingRecordIPKey,
		} {
			if v := store.Get(key); v != nil {
				state[key] = v
			}
		}
	}
	writeJSON(w, http.StatusOK, state)
}

// saveUpload stores an uploaded file under <uploads>/form_<formID>/<uuid>/<name>
func (c *FormsController) saveUpload(formID uuid.UUID, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	rel := path.Join(c.uploadsPath, "form_"+formID.String(), uuid.NewString(), safeFileName(header.Filename))
	if err := c.uploads.AddFile(rel, file); err != nil {
		return "", err
	}
	return rel, nil
}

func (c *FormsController) discardUploads(saved []string) {
	if len(saved) == 0 {
		return
	}
	if err := c.uploads.DeleteFiles(saved); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to discard uploads")
	}
}

// safeFileName reduces a client supplied file name to a safe base name
func safeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Trim(unsafeFileChars.ReplaceAllString(name, "_"), "._")
	if name == "" {
		return "upload"
	}
	return name
}
