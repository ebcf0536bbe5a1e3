package target

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	validate      = validator.New()
	optionDecoder = schema.NewDecoder()
)

func init() {
	optionDecoder.IgnoreUnknownKeys(false)
}

// ParseOptions turns "key=value" pairs into an option map. Repeated keys
// accumulate, and a comma-separated value counts as several values.
func ParseOptions(pairs []string) (map[string][]string, error) {
	opts := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q, want key=value", pair)
		}
		for _, v := range strings.Split(value, ",") {
			opts[key] = append(opts[key], strings.TrimSpace(v))
		}
	}
	return opts, nil
}

// DecodeOptions decodes values into dst, a pointer to a struct whose fields
// carry `schema` tags, then validates dst. Fields not named in values keep
// their current contents, so callers fill in defaults first.
func DecodeOptions(values map[string][]string, dst any) error {
	if len(values) > 0 {
		if err := optionDecoder.Decode(dst, values); err != nil {
			return fmt.Errorf("invalid target options: %w", err)
		}
	}
	return Validate(dst)
}

// FieldError describes one invalid configuration value.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every invalid field of a configuration struct.
type ValidationError struct {
	Struct string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid " + e.Struct + ": " + strings.Join(msgs, "; ")
}

// Validate checks v against its `validate` struct tags. Failures are
// reported as a *ValidationError sorted by field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	ve := &ValidationError{Struct: structName(v)}
	for _, fe := range valErrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Namespace(), Message: formatFieldError(fe)})
	}
	sort.SliceStable(ve.Fields, func(i, j int) bool { return ve.Fields[i].Field < ve.Fields[j].Field })
	return ve
}

func structName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "config"
	}
	return t.String()
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "excludesall":
		return fmt.Sprintf("must not contain any of %q", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
