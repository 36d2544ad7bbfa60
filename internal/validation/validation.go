package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate is safe for concurrent use.
var validate = validator.New()

// Struct validates a request struct against its `validate` tags and maps
// the first failure to a user-displayable message. Form errors surface
// before any network call is made.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "email":
		return fmt.Errorf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Errorf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Errorf("%s must be greater than %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Errorf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "e164":
		return fmt.Errorf("%s must be a valid phone number", fe.Field())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

// PasswordsMatch checks the signup/reset confirmation field.
func PasswordsMatch(password, confirm string) error {
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
