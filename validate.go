package storefront

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks request payloads before they reach the wire.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct wraps validator errors with a stable prefix so
// callers can distinguish local rejection from a server response.
func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("storefront: invalid request: %w", err)
	}
	return nil
}
