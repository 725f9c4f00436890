package notifications

import (
	"context"
	"fmt"

	"github.com/jpkuehn/S3.Forms/tempdata"
	"github.com/rs/zerolog"
)

// ValidationOptions are the client-side validation flags staged with each validation result.
// They are process-wide configuration (FORMS_ARIA_INVALID, FORMS_FOCUS_FIRST_ERROR), not per-workflow settings.
type ValidationOptions struct {
	AriaInvalid     bool
	FocusFirstError bool
}

// ValidationHandler stages the identifiers of invalid fields in temp data
// so the rendered form can highlight them.
type ValidationHandler struct {
	tempData tempdata.Provider
	options  ValidationOptions
	logger   zerolog.Logger
}

// NewValidationHandler creates the validation handler
func NewValidationHandler(tempData tempdata.Provider, options ValidationOptions, logger zerolog.Logger) *ValidationHandler {
	return &ValidationHandler{
		tempData: tempData,
		options:  options,
		logger:   logger,
	}
}

// Handle replaces any previously staged error fields with the invalid keys
// of the notification, or an empty string when there are none.
func (h *ValidationHandler) Handle(ctx context.Context, n *FormValidateNotification) error {
	store, ok := h.tempData.TempData(ctx)
	if !ok {
		h.logger.Debug().Msg("No temp data available, skipping validation state")
		return nil
	}

	if err := store.Delete(tempdata.FormErrorFieldsKey); err != nil {
		return fmt.Errorf("failed to clear form error fields: %w", err)
	}

	var invalid []string
	if n != nil {
		invalid = n.ModelState.InvalidKeys()
	}

	var value interface{} = ""
	if len(invalid) > 0 {
		value = invalid
	}
	if err := store.Set(tempdata.FormErrorFieldsKey, value); err != nil {
		return fmt.Errorf("failed to stage form error fields: %w", err)
	}
	if err := store.Set(tempdata.AriaInvalidKey, h.options.AriaInvalid); err != nil {
		return fmt.Errorf("failed to stage aria flag: %w", err)
	}
	if err := store.Set(tempdata.FocusFirstErrorKey, h.options.FocusFirstError); err != nil {
		return fmt.Errorf("failed to stage focus flag: %w", err)
	}
	return nil
}
