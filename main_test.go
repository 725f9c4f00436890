package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpkuehn/S3.Forms/config"
	"github.com/jpkuehn/S3.Forms/controllers"
	"github.com/jpkuehn/S3.Forms/filestore"
	"github.com/jpkuehn/S3.Forms/services"
	"github.com/jpkuehn/S3.Forms/services/mocks"
	"github.com/jpkuehn/S3.Forms/tempdata"
	"github.com/jpkuehn/S3.Forms/workflows"
)

func TestSetupRouterWithoutBackoffice(t *testing.T) {
	files, err := filestore.New(t.TempDir(), "/media/")
	require.NoError(t, err)

	srvs := &services.Services{
		Submissions: mocks.NewMockSubmissionService(t),
		Records:     mocks.NewMockRecordService(t),
	}
	ctrl := controllers.NewControllers(srvs, workflows.NewRegistry(), files, "forms/upload", tempdata.NewContextProvider(), zerolog.Nop())

	r, err := setupRouter(&config.Config{MediaURLPrefix: "/media/"}, ctrl, nil, files, zerolog.Nop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/forms", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/forms/"+"not-a-guid"+"/state", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}
