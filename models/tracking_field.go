package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// TrackingField identifies a form field selected for storage by the tracking workflow.
// The setting stores {value, caption} pairs; only the value is compared.
type TrackingField struct {
	Value   string `json:"value"`
	Caption string `json:"caption,omitempty"`
}

// Equals compares tracking fields by value only
func (t TrackingField) Equals(other TrackingField) bool {
	return strings.EqualFold(strings.TrimSpace(t.Value), strings.TrimSpace(other.Value))
}

// Matches reports whether the tracking field refers to the given field identifier
func (t TrackingField) Matches(identifier string) bool {
	return t.Equals(TrackingField{Value: identifier})
}

// ErrNoTrackingFields is returned when a tracking setting yields no entries
var ErrNoTrackingFields = errors.New("no tracking fields configured")

// ParseTrackingFields parses the TrackingFields setting.
// A JSON array of {"value": ...} objects is the stored form; anything else is
// read as a semicolon-delimited list of field identifiers.
func ParseTrackingFields(setting string) ([]TrackingField, error) {
	setting = strings.TrimSpace(setting)
	if setting == "" {
		return nil, ErrNoTrackingFields
	}

	var fields []TrackingField
	if strings.HasPrefix(setting, "[") {
		var parsed []TrackingField
		if err := json.Unmarshal([]byte(setting), &parsed); err != nil {
			return nil, err
		}
		for _, f := range parsed {
			if strings.TrimSpace(f.Value) != "" {
				fields = append(fields, f)
			}
		}
	} else {
		for _, part := range strings.Split(setting, ";") {
			if v := strings.TrimSpace(part); v != "" {
				fields = append(fields, TrackingField{Value: v})
			}
		}
	}

	if len(fields) == 0 {
		return nil, ErrNoTrackingFields
	}
	return fields, nil
}

// ContainsTrackingField reports whether the list selects the given field identifier
func ContainsTrackingField(fields []TrackingField, identifier string) bool {
	for _, f := range fields {
		if f.Matches(identifier) {
			return true
		}
	}
	return false
}

// PartitionFields splits a form's fields into the ones selected for tracking and the rest
func PartitionFields(form *Form, tracking []TrackingField) (tracked, blanked []*Field) {
	for _, field := range form.Fields {
		if ContainsTrackingField(tracking, field.ID.String()) || ContainsTrackingField(tracking, field.Alias) {
			tracked = append(tracked, field)
		} else {
			blanked = append(blanked, field)
		}
	}
	return tracked, blanked
}
