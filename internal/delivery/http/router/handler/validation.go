package handler

import (
	"strings"

	"abgad/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationFields flattens validator errors into a field -> message map
// suitable for the error envelope.
func validationFields(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		name := fieldName(fe)
		switch fe.Tag() {
		case "required":
			fields[name] = "The " + name + " field is required."
		case "max":
			fields[name] = "The " + name + " field may not be greater than " + fe.Param() + "."
		case "min":
			fields[name] = "The " + name + " field must be at least " + fe.Param() + "."
		default:
			fields[name] = "The " + name + " field is invalid."
		}
	}

	return fields
}

// fieldName derives a snake_case dotted path from the struct namespace,
// dropping the root struct segment.
func fieldName(fe validator.FieldError) string {
	segments := strings.Split(fe.StructNamespace(), ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	for i, segment := range segments {
		segments[i] = snakeCase(segment)
	}

	return strings.Join(segments, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
