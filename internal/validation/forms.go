package validation

import (
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Instantiating it is expensive
// (it caches struct metadata), so the package keeps a single one.
var validate = validator.New()

// Validatable is implemented by form payload types that know how to validate
// themselves.
//
// Typical pattern:
//   - Define a form struct with `form:` binding tags and `validate:` rule tags.
//   - Implement Validate() error that runs validate.Struct on the sanitized
//     values.
type Validatable interface {
	Validate() error
}

// GenreForm carries the user-submitted field of the genre create/update form.
//
// Sanitization order matters: the name is trimmed first, the length rule is
// checked against the trimmed raw input, and escaping happens last — so a
// submission of "<" fails the length check as one character, not as the four
// characters of "&lt;".
type GenreForm struct {
	Name string `form:"name" validate:"required,min=2"`
}

// Sanitize trims surrounding whitespace from the name.
func (f *GenreForm) Sanitize() {
	f.Name = strings.TrimSpace(f.Name)
}

// Validate applies the form's rules to the sanitized values.
func (f *GenreForm) Validate() error {
	return validate.Struct(f)
}

// EscapedName returns the trimmed name with markup-unsafe characters escaped.
// This is the form the candidate genre carries, whether or not validation
// passed.
func (f *GenreForm) EscapedName() string {
	return html.EscapeString(f.Name)
}

// GenreDeleteForm carries the id submitted with the delete confirmation form.
// The delete flow reads the id from the request body, not the route path.
type GenreDeleteForm struct {
	GenreID string `form:"genreid" validate:"required"`
}

// Validate applies the form's rules.
func (f *GenreDeleteForm) Validate() error {
	return validate.Struct(f)
}

// Messages converts a validation error into human-readable violation
// messages. A nil error yields no messages (the form is valid).
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Validation failed"}
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()

		switch fieldErr.Tag() {
		case "required":
			// An empty name fails the length requirement too; phrase both
			// the same way so the user sees one consistent rule.
			if field == "Name" {
				messages = append(messages, "Genre name must contain at least 2 characters")
			} else {
				messages = append(messages, fmt.Sprintf("%s is required", field))
			}

		case "min":
			if fieldErr.Type().Kind() == reflect.String {
				messages = append(messages, fmt.Sprintf("%s name must contain at least %s characters", entityFor(field), fieldErr.Param()))
			} else {
				messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fieldErr.Param()))
			}

		case "max":
			if fieldErr.Type().Kind() == reflect.String {
				messages = append(messages, fmt.Sprintf("%s must not exceed %s characters", field, fieldErr.Param()))
			} else {
				messages = append(messages, fmt.Sprintf("%s must not exceed %s", field, fieldErr.Param()))
			}

		default:
			if fieldErr.Param() != "" {
				messages = append(messages, fmt.Sprintf("%s: %s:%s", strings.ToLower(field), fieldErr.Tag(), fieldErr.Param()))
			} else {
				messages = append(messages, fmt.Sprintf("%s: %s", strings.ToLower(field), fieldErr.Tag()))
			}
		}
	}

	return messages
}

// entityFor maps a form field back to the entity it names in messages.
func entityFor(field string) string {
	if field == "Name" {
		return "Genre"
	}
	return field
}

// uuidRegex matches standard UUID format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID checks whether a string matches UUID format.
//
// Note: This validates format only. It does not validate UUID version/variant
// semantics.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(uuid)
}
