package contact

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// PhonePattern is the accepted phone format, e.g. "(495) 123-45-67".
var PhonePattern = regexp.MustCompile(`^\(\d{3,5}\) \d{3}-\d{2}-\d{2}$`)

var (
	// ErrInvalidName is returned for names that are empty or contain anything
	// other than letters.
	ErrInvalidName = errors.New("name must contain letters only")

	// ErrInvalidPhone is returned for phones that do not match PhonePattern.
	ErrInvalidPhone = errors.New("phone must look like (XXX) XXX-XX-XX")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// The tag is registered once at package init; a failure here is a programming error.
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return PhonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("contact: register phone validation: %v", err))
	}
	return v
}

// ValidateName reports whether s is a non-empty run of Unicode letters.
// Digits, spaces and punctuation are rejected.
func ValidateName(s string) error {
	if err := validate.Var(s, "required,alphaunicode"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return nil
}

// ValidatePhone reports whether s matches PhonePattern.
func ValidatePhone(s string) error {
	if err := validate.Var(s, "required,phone"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, s)
	}
	return nil
}

// Validate checks every field with the rules applied on entry.
// Records changed through editing are not required to pass.
func (r Record) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "WorkPhone", "PersonalPhone":
			errs = append(errs, fmt.Errorf("%s: %w", fe.Field(), ErrInvalidPhone))
		default:
			errs = append(errs, fmt.Errorf("%s: %w", fe.Field(), ErrInvalidName))
		}
	}
	return errors.Join(errs...)
}
