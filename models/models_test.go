package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test TrackingFields setting parsing
func TestParseTrackingFields(t *testing.T) {
	id := uuid.New()

	// Test JSON setting, metadata is ignored
	fields, err := ParseTrackingFields(`[{"value":"` + id.String() + `","caption":"Email"}]`)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, id.String(), fields[0].Value)

	// Test semicolon-delimited setting
	fields, err = ParseTrackingFields("email; name ;;")
	require.NoError(t, err)
	assert.Len(t, fields, 2)

	// Test empty and malformed settings
	for _, setting := range []string{"", "   ", "[]", `[{"value":""}]`, `[{"value":`} {
		fields, err = ParseTrackingFields(setting)
		assert.Error(t, err, "setting %q should not parse", setting)
		assert.Empty(t, fields)
	}
}

// Test TrackingField equality
func TestTrackingFieldEquality(t *testing.T) {
	a := TrackingField{Value: "ABC", Caption: "first"}
	b := TrackingField{Value: "abc ", Caption: "second"}
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(TrackingField{Value: "abd"}))
}

// Test splitting form fields into tracked and blanked sets
func TestPartitionFields(t *testing.T) {
	a := &Field{ID: uuid.New(), Alias: "email"}
	b := &Field{ID: uuid.New(), Alias: "name"}
	c := &Field{ID: uuid.New(), Alias: "phone"}
	form := &Form{Fields: []*Field{a, b, c}}

	tracked, blanked := PartitionFields(form, []TrackingField{{Value: a.ID.String()}, {Value: "phone"}})
	assert.Equal(t, []*Field{a, c}, tracked)
	assert.Equal(t, []*Field{b}, blanked)
}

// Test record field value helpers
func TestRecordFieldHasValue(t *testing.T) {
	assert.False(t, (&RecordField{}).HasValue())
	assert.False(t, (&RecordField{Values: []string{"", "  "}}).HasValue())
	assert.True(t, (&RecordField{Values: []string{"", "x"}}).HasValue())

	var missing *RecordField
	assert.False(t, missing.HasValue())
	assert.Equal(t, "a, b", (&RecordField{Values: []string{"a", "b"}}).ValuesAsString())
}

// Test record lookups and payload serialization
func TestRecordHelpers(t *testing.T) {
	field := &Field{ID: uuid.New(), Alias: "email", Caption: "Email", FieldTypeID: "textfield"}
	record := NewRecord(uuid.New())
	record.RecordFields[field.ID] = NewRecordField(field, []string{"a@b.c"})

	assert.Equal(t, RecordStateSubmitted, record.State)

	rf, ok := record.GetRecordFieldByAlias("EMAIL")
	require.True(t, ok)
	assert.Equal(t, field.ID, rf.FieldID)

	data, err := record.GenerateRecordDataAsJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"`+field.ID.String()+`":["a@b.c"]}`, data)
}

// Test ValidationErrors helpers
func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())

	errs = append(errs, RequiredSetting("Email"), RequiredSetting("Subject"))
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "'Email' setting has not been set, 'Subject' setting has not been set", errs.Error())
}
