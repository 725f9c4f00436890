package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Form represents the configuration of a form
type Form struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	Name                string    `json:"name" db:"name"`
	StoreRecordsLocally bool      `json:"store_records_locally" db:"store_records_locally"`
	Created             time.Time `json:"created" db:"created"`
	Fields              []*Field  `json:"fields"`
}

// Field represents a field definition on a form
type Field struct {
	ID                   uuid.UUID  `json:"id" db:"id"`
	FormID               uuid.UUID  `json:"form_id" db:"form_id"`
	Alias                string     `json:"alias" db:"alias"`
	Caption              string     `json:"caption" db:"caption"`
	FieldTypeID          string     `json:"field_type_id" db:"field_type_id"`
	Mandatory            bool       `json:"mandatory" db:"mandatory"`
	RegEx                string     `json:"regex,omitempty" db:"regex"`
	RequiredErrorMessage string     `json:"required_error_message,omitempty" db:"required_error_message"`
	InvalidErrorMessage  string     `json:"invalid_error_message,omitempty" db:"invalid_error_message"`
	PreValueSourceID     *uuid.UUID `json:"prevalue_source_id,omitempty" db:"prevalue_source_id"`
	PreValues            []PreValue `json:"prevalues,omitempty"`
	SortOrder            int        `json:"sort_order" db:"sort_order"`
}

// PreValue is a selectable value/caption option of a field
type PreValue struct {
	Value     string `json:"value" db:"value"`
	Caption   string `json:"caption" db:"caption"`
	SortOrder int    `json:"sort_order" db:"sort_order"`
}

// PreValueSource is an external provider of pre-values for a field
type PreValueSource struct {
	ID       uuid.UUID         `json:"id" db:"id"`
	Name     string            `json:"name" db:"name"`
	Type     string            `json:"type" db:"type"`
	Settings map[string]string `json:"settings"`
}

// FieldByID returns the field with the given ID
func (f *Form) FieldByID(id uuid.UUID) (*Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return nil, false
}

// FieldByAlias returns the field with the given alias (case-insensitive)
func (f *Form) FieldByAlias(alias string) (*Field, bool) {
	for _, field := range f.Fields {
		if strings.EqualFold(field.Alias, alias) {
			return field, true
		}
	}
	return nil, false
}

// HasPreValueSource reports whether the field reads its options from a source
func (f *Field) HasPreValueSource() bool {
	return f.PreValueSourceID != nil && *f.PreValueSourceID != uuid.Nil
}
