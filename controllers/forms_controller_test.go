package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jpkuehn/S3.Forms/filestore"
	"github.com/jpkuehn/S3.Forms/notifications"
	"github.com/jpkuehn/S3.Forms/repositories"
	"github.com/jpkuehn/S3.Forms/services"
	"github.com/jpkuehn/S3.Forms/services/mocks"
	"github.com/jpkuehn/S3.Forms/tempdata"
)

type FormsControllerTestSuite struct {
	suite.Suite
	submissions *mocks.MockSubmissionService
	files       *filestore.FileSystem
	store       *tempdata.MapStore
	router      *chi.Mux
	formID      uuid.UUID
}

func (s *FormsControllerTestSuite) SetupTest() {
	s.submissions = mocks.NewMockSubmissionService(s.T())
	files, err := filestore.New(s.T().TempDir(), "/media/")
	s.Require().NoError(err)
	s.files = files
	s.store = tempdata.NewMapStore()
	s.formID = uuid.New()

	c := NewFormsController(&services.Services{Submissions: s.submissions}, files, "forms/upload", tempdata.NewContextProvider(), zerolog.Nop())

	s.router = chi.NewRouter()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(tempdata.WithStore(r.Context(), s.store)))
		})
	})
	s.router.Post("/forms/{formID}", c.Submit)
	s.router.Get("/forms/{formID}/state", c.State)
}

func (s *FormsControllerTestSuite) postForm(values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/forms/"+s.formID.String(), strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *FormsControllerTestSuite) postUpload(field, name, content string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("name", "Ada"))
	part, err := mw.CreateFormFile(field, name)
	s.Require().NoError(err)
	_, err = part.Write([]byte(content))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/forms/"+s.formID.String(), &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *FormsControllerTestSuite) TestSubmitValid() {
	recordID := uuid.New()
	s.submissions.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(sub *services.Submission) bool {
		return sub.FormID == s.formID && sub.Values["name"][0] == "Ada" && sub.PageID == 1063
	})).Return(&services.SubmissionResult{Valid: true, RecordID: recordID}, nil)

	w := s.postForm(url.Values{"name": {"Ada"}, "pageId": {"1063"}})

	s.Equal(http.StatusOK, w.Code)
	var got map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(true, got["valid"])
	s.Equal(recordID.String(), got["record_id"])
}

func (s *FormsControllerTestSuite) TestSubmitInvalidFormID() {
	req := httptest.NewRequest(http.MethodPost, "/forms/not-a-guid", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *FormsControllerTestSuite) TestSubmitUnknownForm() {
	s.submissions.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to load form: %w", repositories.ErrNotFound))

	w := s.postForm(url.Values{"name": {"Ada"}})

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *FormsControllerTestSuite) TestSubmitStoresUpload() {
	var fileURL string
	s.submissions.EXPECT().Submit(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sub *services.Submission) {
			fileURL = sub.Uploads["cv"][0]
		}).
		Return(&services.SubmissionResult{Valid: true}, nil)

	w := s.postUpload("cv", `..\..\My CV (final).pdf`, "%PDF-1.4")

	s.Equal(http.StatusOK, w.Code)
	s.True(strings.HasPrefix(fileURL, "/media/forms/upload/form_"+s.formID.String()+"/"))
	s.True(strings.HasSuffix(fileURL, "/My_CV_final_.pdf"))
	s.True(s.files.FileExists(s.files.GetRelativePath(fileURL)))
}

func (s *FormsControllerTestSuite) TestSubmitPostedTextIsNotAnUpload() {
	s.Require().NoError(s.files.AddFile("site/logo.png", strings.NewReader("png")))

	var submitted *services.Submission
	s.submissions.EXPECT().Submit(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sub *services.Submission) { submitted = sub }).
		Return(&services.SubmissionResult{Valid: true}, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("cv", "/media/site/logo.png"))
	s.Require().NoError(mw.WriteField("photo", "/media/site/logo.png"))
	part, err := mw.CreateFormFile("photo", "me.jpg")
	s.Require().NoError(err)
	_, err = part.Write([]byte("jpeg"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/forms/"+s.formID.String(), &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Require().NotNil(submitted)
	s.NotContains(submitted.Uploads, "cv")
	s.Require().Len(submitted.Uploads["photo"], 1)
	s.NotEqual("/media/site/logo.png", submitted.Uploads["photo"][0])
	s.True(strings.HasSuffix(submitted.Uploads["photo"][0], "/me.jpg"))
	s.True(s.files.FileExists("site/logo.png"))
}

func (s *FormsControllerTestSuite) TestSubmitInvalidDiscardsUpload() {
	var fileURL string
	modelState := notifications.ModelState{}
	modelState.AddError("email", "'Email' is mandatory")
	s.submissions.EXPECT().Submit(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sub *services.Submission) {
			fileURL = sub.Uploads["cv"][0]
		}).
		Return(&services.SubmissionResult{Valid: false, Errors: modelState}, nil)

	w := s.postUpload("cv", "cv.pdf", "%PDF-1.4")

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(w.Body.String(), "'Email' is mandatory")
	s.NotEmpty(fileURL)
	s.False(s.files.FileExists(s.files.GetRelativePath(fileURL)))
}

func (s *FormsControllerTestSuite) TestSubmitFailureDiscardsUpload() {
	var fileURL string
	s.submissions.EXPECT().Submit(mock.Anything, mock.Anything).
		Run(func(_ context.Context, sub *services.Submission) {
			fileURL = sub.Uploads["cv"][0]
		}).
		Return(nil, fmt.Errorf("failed to insert record: disk full"))

	w := s.postUpload("cv", "cv.pdf", "%PDF-1.4")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.False(s.files.FileExists(s.files.GetRelativePath(fileURL)))
}

func (s *FormsControllerTestSuite) TestState() {
	s.Require().NoError(s.store.Set(tempdata.FormErrorFieldsKey, []string{"email"}))
	s.Require().NoError(s.store.Set(tempdata.TrackingRecordIDKey, "42"))

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/forms/"+s.formID.String()+"/state", nil))

	s.Equal(http.StatusOK, w.Code)
	var got map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal([]interface{}{"email"}, got[tempdata.FormErrorFieldsKey])
	s.Equal("42", got[tempdata.TrackingRecordIDKey])
	s.NotContains(got, tempdata.AriaInvalidKey)
}

func TestFormsControllerTestSuite(t *testing.T) {
	suite.Run(t, new(FormsControllerTestSuite))
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\ada\My CV.docx`, "My_CV.docx"},
		{"...", "upload"},
		{"", "upload"},
	}
	for _, tt := range tests {
		if got := safeFileName(tt.in); got != tt.want {
			t.Errorf("safeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
