package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeView(t *testing.T, root, rel, content string) {
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestRender(t *testing.T) {
	root := t.TempDir()
	writeView(t, root, "Forms/Emails/Test.html", `<h1>{{.Title}}</h1>{{range $i, $v := .Items}}{{add $i 1}}:{{$v}};{{end}}`)

	r := New(root)
	assert.True(t, r.Exists("Forms/Emails/Test.html"))
	assert.True(t, r.Exists("~/Forms/Emails/Test.html"))
	assert.False(t, r.Exists("Forms/Emails"))
	assert.False(t, r.Exists(""))

	out, err := r.Render("Forms/Emails/Test.html", map[string]interface{}{
		"Title": "<b>Hi</b>",
		"Items": []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "<h1>&lt;b&gt;Hi&lt;/b&gt;</h1>1:a;2:b;", out)
}

func TestRenderErrors(t *testing.T) {
	root := t.TempDir()
	writeView(t, root, "broken.html", `{{.Missing.Field}}`)
	writeView(t, root, "unparsable.html", `{{if}}`)

	r := New(root)

	_, err := r.Render("nope.html", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = r.Render("unparsable.html", nil)
	assert.ErrorContains(t, err, "failed to parse template")

	_, err = r.Render("broken.html", struct{}{})
	assert.ErrorContains(t, err, "failed to render template")
}

func TestContentContextPreviewMode(t *testing.T) {
	c := NewContentContext(true)
	assert.True(t, c.InPreviewMode())
	c.ForcePreviewMode(false)
	assert.False(t, c.InPreviewMode())
}
