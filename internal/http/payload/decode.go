package payload

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

// Form is a payload populated from url-encoded form values.
type Form interface {
	Bind(values url.Values)
	validation.Validatable
}

type DecodeValidator struct{}

// DecodeAndValidateForm parses the request body into form and validates it.
// The form is always bound, even when validation fails, so it can be re-rendered.
func (dv DecodeValidator) DecodeAndValidateForm(r *http.Request, form Form) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form payload: %w", err)
	}

	form.Bind(r.PostForm)

	if err := form.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// FieldErrors flattens validation errors into a field name to message map.
// It returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}

	fields := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		fields[field] = fieldErr.Error()
	}

	return fields
}
