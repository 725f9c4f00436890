package workflows

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jpkuehn/S3.Forms/models"
	"github.com/jpkuehn/S3.Forms/placeholders"
	"github.com/jpkuehn/S3.Forms/prevalues"
)

// ErrFieldWithoutAlias is returned when a submitted field has no alias to address it by in a template
var ErrFieldWithoutAlias = errors.New("record field has no alias")

// FieldViewModel is one submitted field as seen by an email template
type FieldViewModel struct {
	ID        uuid.UUID
	Alias     string
	Name      string
	FieldType string
	Values    []string
}

// Value returns the field values joined by ", "
func (f FieldViewModel) Value() string {
	return strings.Join(f.Values, ", ")
}

// EmailTemplateModel is the model handed to email templates
type EmailTemplateModel struct {
	FormID      uuid.UUID
	FormName    string
	RecordID    uuid.UUID
	RecordIP    string
	Culture     string
	PageID      int
	MemberKey   string
	SubmittedOn time.Time
	Fields      []FieldViewModel
	// PreValues maps a field ID to its pre-value captions keyed by value
	PreValues  map[uuid.UUID]map[string]string
	HeaderHTML *template.HTML
	FooterHTML *template.HTML
	Settings   map[string]string
}

// Field returns the field with the given alias
func (m EmailTemplateModel) Field(alias string) (FieldViewModel, bool) {
	for _, f := range m.Fields {
		if strings.EqualFold(f.Alias, alias) {
			return f, true
		}
	}
	return FieldViewModel{}, false
}

// Caption returns the pre-value caption of a field value, or the value itself
func (m EmailTemplateModel) Caption(fieldID uuid.UUID, value string) string {
	if captions, ok := m.PreValues[fieldID]; ok {
		if caption, ok := captions[value]; ok && caption != "" {
			return caption
		}
	}
	return value
}

// templateModelBuilder turns a record into the email template model
type templateModelBuilder struct {
	fieldTypes FieldTypes
	preValues  PreValueResolver
}

func (b templateModelBuilder) build(ctx context.Context, ec *ExecutionContext, header, footer string, settings map[string]string) (*EmailTemplateModel, error) {
	record := ec.Record
	for _, rf := range record.RecordFields {
		if strings.TrimSpace(rf.Alias) == "" {
			return nil, fmt.Errorf("%w: field %s", ErrFieldWithoutAlias, rf.FieldID)
		}
	}

	model := &EmailTemplateModel{
		FormID:      ec.Form.ID,
		FormName:    ec.Form.Name,
		RecordID:    record.UniqueID,
		RecordIP:    record.IP,
		Culture:     record.Culture,
		PageID:      record.PageID,
		MemberKey:   record.MemberKey,
		SubmittedOn: record.Created,
		Fields:      b.fields(ec.Form, record),
		PreValues:   make(map[uuid.UUID]map[string]string),
		HeaderHTML:  htmlOrNil(placeholders.Replace(header, record)),
		FooterHTML:  htmlOrNil(placeholders.Replace(footer, record)),
		Settings:    settings,
	}

	for _, field := range ec.Form.Fields {
		if !b.fieldTypes.SupportsPreValues(field.FieldTypeID) {
			continue
		}
		values, err := b.preValues.Resolve(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve pre-values for field %s: %w", field.Alias, err)
		}
		model.PreValues[field.ID] = prevalues.Dedupe(values)
	}
	return model, nil
}

// fields lists the submitted fields in form order, followed by fields no longer on the form
func (b templateModelBuilder) fields(form *models.Form, record *models.Record) []FieldViewModel {
	var out []FieldViewModel
	seen := make(map[uuid.UUID]bool)

	for _, field := range form.Fields {
		rf, ok := record.GetRecordField(field.ID)
		if !ok {
			continue
		}
		seen[field.ID] = true
		out = append(out, b.field(rf, placeholders.Replace(field.Caption, record)))
	}

	var orphans []*models.RecordField
	for id, rf := range record.RecordFields {
		if !seen[id] {
			orphans = append(orphans, rf)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Alias < orphans[j].Alias })
	for _, rf := range orphans {
		out = append(out, b.field(rf, placeholders.Replace(rf.Caption, record)))
	}
	return out
}

func (b templateModelBuilder) field(rf *models.RecordField, name string) FieldViewModel {
	values := rf.Values
	if len(values) == 0 {
		values = []string{""}
	}
	return FieldViewModel{
		ID:        rf.FieldID,
		Alias:     rf.Alias,
		Name:      name,
		FieldType: b.fieldTypes.Name(rf.FieldTypeID),
		Values:    append([]string(nil), values...),
	}
}

func htmlOrNil(s string) *template.HTML {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	h := template.HTML(s)
	return &h
}
