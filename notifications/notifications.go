package notifications

import (
	"context"
	"errors"
	"sort"

	"github.com/jpkuehn/S3.Forms/models"
	"github.com/rs/zerolog"
)

// ModelStateEntry holds the validation errors of one submitted field
type ModelStateEntry struct {
	AttemptedValue []string `json:"attempted_value,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

// IsValid reports whether the entry has no errors
func (e *ModelStateEntry) IsValid() bool {
	return e == nil || len(e.Errors) == 0
}

// ModelState maps field identifiers to their validation state
type ModelState map[string]*ModelStateEntry

// AddError records a validation error for a field
func (m ModelState) AddError(key, message string) {
	entry, ok := m[key]
	if !ok || entry == nil {
		entry = &ModelStateEntry{}
		m[key] = entry
	}
	entry.Errors = append(entry.Errors, message)
}

// IsValid reports whether every entry is valid
func (m ModelState) IsValid() bool {
	for _, entry := range m {
		if !entry.IsValid() {
			return false
		}
	}
	return true
}

// InvalidKeys returns the keys of invalid entries, sorted
func (m ModelState) InvalidKeys() []string {
	var keys []string
	for key, entry := range m {
		if !entry.IsValid() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// FormValidateNotification is published after a submission has been validated
type FormValidateNotification struct {
	Form       *models.Form
	ModelState ModelState
}

// Handler reacts to validation notifications
type Handler interface {
	Handle(ctx context.Context, n *FormValidateNotification) error
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, n *FormValidateNotification) error

func (f HandlerFunc) Handle(ctx context.Context, n *FormValidateNotification) error {
	return f(ctx, n)
}

// Publisher fans validation notifications out to its handlers in
// subscription order. A failing handler does not stop the others.
type Publisher struct {
	handlers []Handler
	logger   zerolog.Logger
}

// NewPublisher creates a publisher with the given handlers
func NewPublisher(logger zerolog.Logger, handlers ...Handler) *Publisher {
	return &Publisher{handlers: handlers, logger: logger}
}

// Subscribe adds a handler
func (p *Publisher) Subscribe(h Handler) {
	p.handlers = append(p.handlers, h)
}

// Publish delivers the notification to every handler
func (p *Publisher) Publish(ctx context.Context, n *FormValidateNotification) error {
	var errs []error
	for _, h := range p.handlers {
		if err := h.Handle(ctx, n); err != nil {
			p.logger.Error().Err(err).Msg("Validation notification handler failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
