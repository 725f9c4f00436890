package placeholders

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jpkuehn/S3.Forms/models"
)

func TestReplace(t *testing.T) {
	field := &models.Field{ID: uuid.New(), Alias: "firstName"}
	record := models.NewRecord(uuid.New())
	record.IP = "198.51.100.7"
	record.PageID = 1234
	record.RecordFields[field.ID] = models.NewRecordField(field, []string{"Ada", "Grace"})

	tests := []struct {
		in   string
		want string
	}{
		{"Hello [#firstName]", "Hello Ada, Grace"},
		{"Hello [#FIRSTNAME]", "Hello Ada, Grace"},
		{"From [$ip] on page [$pageId]", "From 198.51.100.7 on page 1234"},
		{"Record [$recordId]", "Record " + record.UniqueID.String()},
		{"Missing [#lastName][$nope]", "Missing "},
		{"No tokens", "No tokens"},
		{"Not a [token]", "Not a [token]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Replace(tt.in, record), "input %q", tt.in)
	}

	assert.Equal(t, "[#firstName]", Replace("[#firstName]", nil))
}
