package models

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordState is the lifecycle state of a form submission
type RecordState string

const (
	RecordStateOpened             RecordState = "Opened"
	RecordStateResumed            RecordState = "Resumed"
	RecordStatePartiallySubmitted RecordState = "PartiallySubmitted"
	RecordStateSubmitted          RecordState = "Submitted"
	RecordStateApproved           RecordState = "Approved"
	RecordStateRejected           RecordState = "Rejected"
	RecordStateDeleted            RecordState = "Deleted"
)

// Record represents one form submission and its captured field values
type Record struct {
	ID           int64                      `json:"id" db:"id"`
	UniqueID     uuid.UUID                  `json:"unique_id" db:"unique_id"`
	FormID       uuid.UUID                  `json:"form_id" db:"form_id"`
	Created      time.Time                  `json:"created" db:"created"`
	Updated      time.Time                  `json:"updated" db:"updated"`
	IP           string                     `json:"ip" db:"ip"`
	Culture      string                     `json:"culture" db:"culture"`
	PageID       int                        `json:"page_id" db:"page_id"`
	MemberKey    string                     `json:"member_key,omitempty" db:"member_key"`
	State        RecordState                `json:"state" db:"state"`
	RecordData   string                     `json:"record_data,omitempty" db:"record_data"`
	RecordFields map[uuid.UUID]*RecordField `json:"fields"`
}

// RecordField holds the captured value(s) of one form field for a record
type RecordField struct {
	Key         uuid.UUID `json:"key" db:"key"`
	FieldID     uuid.UUID `json:"field_id" db:"field_id"`
	Alias       string    `json:"alias" db:"alias"`
	Caption     string    `json:"caption" db:"caption"`
	FieldTypeID string    `json:"field_type_id" db:"field_type_id"`
	Values      []string  `json:"values"`
}

// NewRecord creates an empty submitted record for a form
func NewRecord(formID uuid.UUID) *Record {
	now := time.Now()
	return &Record{
		UniqueID:     uuid.New(),
		FormID:       formID,
		Created:      now,
		Updated:      now,
		State:        RecordStateSubmitted,
		RecordFields: make(map[uuid.UUID]*RecordField),
	}
}

// NewRecordField creates a record field bound to a form field definition
func NewRecordField(field *Field, values []string) *RecordField {
	return &RecordField{
		Key:         uuid.New(),
		FieldID:     field.ID,
		Alias:       field.Alias,
		Caption:     field.Caption,
		FieldTypeID: field.FieldTypeID,
		Values:      values,
	}
}

// HasValue reports whether any captured value is non-blank
func (f *RecordField) HasValue() bool {
	if f == nil {
		return false
	}
	for _, v := range f.Values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// ValuesAsString joins the captured values with ", "
func (f *RecordField) ValuesAsString() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.Values, ", ")
}

// GetRecordField returns the record field captured for a form field
func (r *Record) GetRecordField(fieldID uuid.UUID) (*RecordField, bool) {
	f, ok := r.RecordFields[fieldID]
	return f, ok
}

// GetRecordFieldByAlias looks a record field up by its alias (case-insensitive)
func (r *Record) GetRecordFieldByAlias(alias string) (*RecordField, bool) {
	for _, f := range r.RecordFields {
		if strings.EqualFold(f.Alias, alias) {
			return f, true
		}
	}
	return nil, false
}

// SortedFields returns the record fields ordered by alias so output is stable
func (r *Record) SortedFields() []*RecordField {
	fields := make([]*RecordField, 0, len(r.RecordFields))
	for _, f := range r.RecordFields {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Alias < fields[j].Alias
	})
	return fields
}

// GenerateRecordDataAsJSON serializes the field values keyed by field ID
func (r *Record) GenerateRecordDataAsJSON() (string, error) {
	data := make(map[string][]string, len(r.RecordFields))
	for id, f := range r.RecordFields {
		data[id.String()] = f.Values
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
