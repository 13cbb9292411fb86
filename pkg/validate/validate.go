package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sarpras/borrowing-service/internal/errs"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate turns struct-tag violations into a field-scoped ValidationError
// so handlers can render a 422 with per-field messages.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			fields := make(map[string]string, len(vErrs))
			for _, fe := range vErrs {
				fields[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
			}
			return errs.NewValidationError(fields)
		}
		return err
	}
	return nil
}
