package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindSettings(t *testing.T) {
	var settings SecureEmailWorkflowSettings
	err := BindSettings(&settings, map[string]string{
		"Email":             "a@example.com",
		"subject":           "New [#name]",
		"SignEmail":         "True",
		"Attachment":        "on",
		"RazorViewFilePath": "Forms/Emails/Example.html",
		"Unknown":           "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "a@example.com", settings.Email)
	assert.Equal(t, "New [#name]", settings.Subject)
	assert.True(t, settings.SignEmail)
	assert.True(t, settings.Attachment)
	assert.Equal(t, "Forms/Emails/Example.html", settings.RazorViewFilePath)
	assert.Empty(t, settings.CcEmail)
}

func TestBindSettingsBooleans(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"True", true},
		{"true", true},
		{"1", true},
		{"on", true},
		{"False", false},
		{"", false},
		{"nope", false},
	}
	for _, tt := range tests {
		var settings SecureEmailSettings
		require.NoError(t, BindSettings(&settings, map[string]string{"SignEmail": tt.raw}))
		assert.Equal(t, tt.want, settings.SignEmail, "raw %q", tt.raw)
	}
}

func TestBindSettingsRequiresStructPointer(t *testing.T) {
	var settings SecureEmailSettings
	assert.Error(t, BindSettings(settings, nil))
	assert.Error(t, BindSettings(new(string), nil))
}

func TestSettingsMapAndDescribe(t *testing.T) {
	settings := SecureEmailWorkflowSettings{
		SecureEmailSettings: SecureEmailSettings{Email: "a@example.com", SignEmail: true},
		HeaderHTML:          "<p>Hi</p>",
	}

	m := SettingsMap(settings)
	assert.Equal(t, "a@example.com", m["Email"])
	assert.Equal(t, "true", m["SignEmail"])
	assert.Equal(t, "<p>Hi</p>", m["HeaderHtml"])
	assert.Equal(t, "false", m["Attachment"])

	descriptors := DescribeSettings(SecureEmailWorkflowSettings{})
	require.Len(t, descriptors, 12)
	assert.Equal(t, "Email", descriptors[0].Name)
	assert.Equal(t, "textfield", descriptors[0].View)

	views := make(map[string]string)
	for _, d := range descriptors {
		views[d.Name] = d.View
	}
	assert.Equal(t, "checkbox", views["SignEmail"])
	assert.Equal(t, "richtext", views["HeaderHtml"])
	assert.Equal(t, "templatepicker", views["RazorViewFilePath"])
}
