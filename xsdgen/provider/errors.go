package provider

import "fmt"

// Error codes carried by EmitError.
const (
	// CodeUnsupported marks a schema shape the generator does not model,
	// such as a choice group or an anonymous top-level type.
	CodeUnsupported = "unsupported_construct"

	// CodeMissingName marks a node that must be named by this point of the
	// traversal but is not.
	CodeMissingName = "missing_name"

	// CodeNameCollision marks two definitions, two fields of one struct, or
	// two enum members that map to the same identifier.
	CodeNameCollision = "name_collision"
)

// EmitError is a fatal generation error. It aborts the whole run; no partial
// schema is returned.
type EmitError struct {
	Code    string
	Path    string
	Message string
}

func (e *EmitError) Error() string {
	if e.Path == "" {
		return e.Code + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
}

func unsupported(path, format string, args ...any) error {
	return &EmitError{Code: CodeUnsupported, Path: path, Message: fmt.Sprintf(format, args...)}
}

func missingName(path, what string) error {
	return &EmitError{Code: CodeMissingName, Path: path, Message: what + " has no name"}
}

func collision(path, format string, args ...any) error {
	return &EmitError{Code: CodeNameCollision, Path: path, Message: fmt.Sprintf(format, args...)}
}
