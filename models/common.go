package models

import (
	"strings"
	"time"
)

// AuditFields contains common audit tracking fields
type AuditFields struct {
	CreatedBy  string     `json:"created_by,omitempty"`
	ModifiedBy string     `json:"modified_by,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error joins all messages so the list can be returned as an error
func (ve ValidationErrors) Error() string {
	return strings.Join(ve.GetMessages(), ", ")
}

// RequiredSetting builds the error reported for an empty workflow setting
func RequiredSetting(name string) ValidationError {
	return ValidationError{Field: name, Message: "'" + name + "' setting has not been set"}
}
