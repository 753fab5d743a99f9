package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// requestValidator checks the validate struct tags declared on the request
// payloads in the models package. A single instance is shared by all
// services; validator.Validate is safe for concurrent use.
var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs tag-based validation on a request payload and wraps
// any violation in [ErrValidationFailed] so the HTTP layer can map it to a
// 400 without inspecting validator internals.
func validateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return nil
}
