package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SeatRows are the seat letters in use; "I" is skipped.
const SeatRows = "ABCDEFGHJK"

const MaxSeatNumber = 30

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("seat", func(fl validator.FieldLevel) bool {
		return ValidSeat(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Struct validates s against its validate tags and reports failures as
// ValidationErrors.
func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}
	return nil
}

// ValidSeat reports whether seat is a row letter from SeatRows followed by
// a number from 1 to MaxSeatNumber, e.g. "A12".
func ValidSeat(seat string) bool {
	if len(seat) < 2 || !strings.ContainsRune(SeatRows, rune(seat[0])) {
		return false
	}
	digits := seat[1:]
	if digits[0] == '0' {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(digits)
	return err == nil && n >= 1 && n <= MaxSeatNumber
}

func translate(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		message := err.Error()
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "seat":
			message = fmt.Sprintf("%s must be a row letter from %s followed by 1-%d", err.Field(), SeatRows, MaxSeatNumber)
		case "gtfield":
			message = fmt.Sprintf("%s must be after %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		}
		out = append(out, ValidationError{Field: err.Field(), Message: message})
	}
	return out
}
