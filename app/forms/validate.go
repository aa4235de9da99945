package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"hostel-portal/app/client"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// check runs the struct's validate tags and turns failures into a single
// client validation error naming the offending fields.
func check(draft interface{}) error {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return client.Validation(err.Error())
	}

	var missing []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "email":
			return client.Validation("Please enter a valid email address.")
		case "gt", "min":
			return client.Validation(fe.Field() + " must be a positive number.")
		default:
			return client.Validation(fe.Field() + " is invalid.")
		}
	}
	return client.Validation("Please fill in: " + strings.Join(missing, ", ") + ".")
}

// DigitsOnly strips every non-digit character. Length is not checked.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
