package rendering

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// ErrTemplateNotFound is returned when a view does not exist under the templates root
var ErrTemplateNotFound = errors.New("template not found")

// ContentContext is the per-request content state views are rendered in
type ContentContext struct {
	mu      sync.Mutex
	preview bool
}

// NewContentContext creates a content context, optionally in preview mode
func NewContentContext(preview bool) *ContentContext {
	return &ContentContext{preview: preview}
}

// InPreviewMode reports whether unpublished content is being previewed
func (c *ContentContext) InPreviewMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preview
}

// ForcePreviewMode switches preview mode on or off
func (c *ContentContext) ForcePreviewMode(preview bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.preview = preview
}

// Renderer renders html/template views stored under a root directory
type Renderer struct {
	root  string
	funcs template.FuncMap
}

// New creates a renderer for views under root
func New(root string) *Renderer {
	return &Renderer{
		root: root,
		funcs: template.FuncMap{
			"add":  func(a, b int) int { return a + b },
			"sub":  func(a, b int) int { return a - b },
			"join": strings.Join,
			"html": func(s string) template.HTML { return template.HTML(s) },
		},
	}
}

// resolve maps a view path like "Forms/Emails/Example.html" to a file under the root
func (r *Renderer) resolve(viewPath string) (string, error) {
	viewPath = strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(viewPath)), "~/")
	if viewPath == "" {
		return "", ErrTemplateNotFound
	}
	clean := path.Clean("/" + viewPath)
	return filepath.Join(r.root, filepath.FromSlash(clean)), nil
}

// Exists reports whether the view file exists
func (r *Renderer) Exists(viewPath string) bool {
	full, err := r.resolve(viewPath)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

// Render executes the view against the model and returns the output
func (r *Renderer) Render(viewPath string, model interface{}) (string, error) {
	full, err := r.resolve(viewPath)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(full); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", viewPath, ErrTemplateNotFound)
	}

	// Create a new template set with only the view we need
	name := filepath.Base(full)
	tmpl, err := template.New(name).Funcs(r.funcs).ParseFiles(full)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", viewPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, model); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", viewPath, err)
	}

	return buf.String(), nil
}
