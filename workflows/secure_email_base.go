package workflows

import (
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jpkuehn/S3.Forms/mailer"
	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/placeholders"
	"github.com/rs/zerolog"
)

// ErrSessionClosed is returned when an attachment session is cleaned up twice
var ErrSessionClosed = errors.New("attachment session already cleaned up")

const defaultContentType = "application/octet-stream"

// SecureEmailSettings are the settings shared by the secure email workflows
type SecureEmailSettings struct {
	Email        string `setting:"Email" description:"Receiver email addresses, separated by ;"`
	CcEmail      string `setting:"CcEmail" description:"CC email addresses, separated by ;"`
	BccEmail     string `setting:"BccEmail" description:"BCC email addresses, separated by ;"`
	FromEmail    string `setting:"FromEmail" description:"Sender address, defaults to the configured SMTP sender"`
	SenderEmail  string `setting:"SenderEmail" description:"Address placed in the Sender header"`
	ReplyToEmail string `setting:"ReplyToEmail" description:"Reply-to address"`
	Subject      string `setting:"Subject" description:"Email subject"`
	SignEmail    bool   `setting:"SignEmail" description:"Sign the email with the configured S/MIME certificate"`
}

// Validate reports missing required settings
func (s SecureEmailSettings) Validate() models.ValidationErrors {
	var errs models.ValidationErrors
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, models.RequiredSetting("Email"))
	}
	if strings.TrimSpace(s.Subject) == "" {
		errs = append(errs, models.RequiredSetting("Subject"))
	}
	return errs
}

// MessageArgs builds the message arguments, replacing record placeholders in every address and the subject
func (s SecureEmailSettings) MessageArgs(record *models.Record, body string, attachments []mailer.Attachment) mailer.MessageArgs {
	return mailer.MessageArgs{
		To:          mailer.SplitAddresses(placeholders.Replace(s.Email, record)),
		Cc:          mailer.SplitAddresses(placeholders.Replace(s.CcEmail, record)),
		Bcc:         mailer.SplitAddresses(placeholders.Replace(s.BccEmail, record)),
		From:        strings.TrimSpace(placeholders.Replace(s.FromEmail, record)),
		Sender:      strings.TrimSpace(placeholders.Replace(s.SenderEmail, record)),
		ReplyTo:     strings.TrimSpace(placeholders.Replace(s.ReplyToEmail, record)),
		Subject:     placeholders.Replace(s.Subject, record),
		HTMLBody:    body,
		Attachments: attachments,
		Sign:        s.SignEmail,
	}
}

// SecureEmailBase holds what the secure email workflows share: the mail
// transport and access to uploaded files.
type SecureEmailBase struct {
	mailer      mailer.Mailer
	files       MediaFileSystem
	uploadsPath string
}

// NewSecureEmailBase creates the shared secure email dependencies.
// uploadsPath is the media-relative folder form uploads are stored under.
func NewSecureEmailBase(m mailer.Mailer, files MediaFileSystem, uploadsPath string) *SecureEmailBase {
	return &SecureEmailBase{
		mailer:      m,
		files:       files,
		uploadsPath: strings.Trim(filepath.ToSlash(uploadsPath), "/"),
	}
}

// NewAttachmentSession starts collecting attachments for one message
func (b *SecureEmailBase) NewAttachmentSession(logger zerolog.Logger) *AttachmentSession {
	return &AttachmentSession{
		files:       b.files,
		uploadsPath: b.uploadsPath,
		logger:      logger,
	}
}

// AttachmentSession tracks the files opened as attachments for one message.
// Cleanup must be called exactly once after the send completes; it closes
// the streams and deletes the uploaded files and their upload folders.
type AttachmentSession struct {
	files       MediaFileSystem
	uploadsPath string
	logger      zerolog.Logger

	streams     []io.Closer
	paths       []string
	attachments []mailer.Attachment
	closed      bool
}

// TryCreateAttachment opens a stored file as an attachment.
// It reports false unless the path resolves to an existing file under the uploads folder.
func (s *AttachmentSession) TryCreateAttachment(p string) (mailer.Attachment, bool) {
	if s.closed || strings.TrimSpace(p) == "" {
		return mailer.Attachment{}, false
	}

	rel := path.Clean(s.files.GetRelativePath(p))
	// Only form uploads may be attached, since attached files are deleted afterwards
	if s.uploadsPath == "" || !strings.HasPrefix(rel, s.uploadsPath+"/") {
		s.logger.Warn().Str("path", p).Msg("Attachment path outside uploads folder")
		return mailer.Attachment{}, false
	}
	if !s.files.FileExists(rel) {
		s.logger.Debug().Str("path", p).Msg("Attachment file not found")
		return mailer.Attachment{}, false
	}

	full, err := s.files.GetFullPath(rel)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", p).Msg("Failed to resolve attachment path")
		return mailer.Attachment{}, false
	}

	contentType := defaultContentType
	if mt, err := mimetype.DetectFile(full); err == nil {
		contentType = mt.String()
	}

	f, err := s.files.OpenFile(rel)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", p).Msg("Failed to open attachment")
		return mailer.Attachment{}, false
	}

	attachment := mailer.Attachment{
		Name:        filepath.Base(full),
		ContentType: contentType,
		Reader:      f,
	}
	s.streams = append(s.streams, f)
	s.paths = append(s.paths, rel)
	s.attachments = append(s.attachments, attachment)
	return attachment, true
}

// Attachments returns the attachments created so far
func (s *AttachmentSession) Attachments() []mailer.Attachment {
	return s.attachments
}

// Paths returns the media-relative paths of the attached files
func (s *AttachmentSession) Paths() []string {
	return s.paths
}

// Closed reports whether Cleanup has run
func (s *AttachmentSession) Closed() bool {
	return s.closed
}

// Cleanup closes every attachment stream, deletes the attached files and
// removes their upload folders once empty. Missing files are ignored.
func (s *AttachmentSession) Cleanup() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true

	var errs []error
	for _, stream := range s.streams {
		if err := stream.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
	}

	if len(s.paths) > 0 {
		if err := s.files.DeleteFiles(s.paths); err != nil {
			errs = append(errs, err)
		}
	}

	for _, dir := range s.uploadFolders() {
		err := s.files.DeleteDirectory(dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("directory", dir).Msg("Failed to delete upload folder")
		}
	}

	s.streams = nil
	s.attachments = nil
	return errors.Join(errs...)
}

// uploadFolders lists the per-upload folders of attached files stored under the uploads path
func (s *AttachmentSession) uploadFolders() []string {
	if s.uploadsPath == "" {
		return nil
	}
	seen := make(map[string]bool)
	var dirs []string
	for _, rel := range s.paths {
		dir := path.Dir(rel)
		if !strings.HasPrefix(dir, s.uploadsPath+"/") || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}
