// Package ir defines the intermediate representation produced from an XML
// Schema tree. Descriptors are language-agnostic; generators transform them
// into target language source code.
package ir

import "strings"

// Documentation holds documentation text taken from schema annotations.
type Documentation struct {
	// Summary is the first paragraph, suitable for single-line comments.
	Summary string

	// Body is the complete documentation text, including the summary.
	// Paragraphs are separated by blank lines.
	Body string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == ""
}

// NewDocumentation builds Documentation from annotation text.
func NewDocumentation(text string) Documentation {
	text = strings.TrimSpace(text)
	if text == "" {
		return Documentation{}
	}
	summary, _, _ := strings.Cut(text, "\n\n")
	return Documentation{Summary: strings.TrimSpace(summary), Body: text}
}

// Source locates the schema node a descriptor was generated from.
type Source struct {
	// Path is a slash-separated node path, e.g. "complexType[Order]/element[item]".
	Path string
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.Path == ""
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Path is the schema node that triggered the warning, if applicable.
	Path string `json:"path,omitempty"`

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string `json:"typeName,omitempty"`
}

// Warning codes.
const (
	WarnUnknownPrimitive = "unknown_primitive"
	WarnEnumFallback     = "enum_fallback"
	WarnMissingReference = "missing_type_reference"
	WarnDependencyCycle  = "dependency_cycle"

	// WarnIdentifierRewritten is reported by generators that had to change
	// an identifier to make it legal in the target language.
	WarnIdentifierRewritten = "identifier_rewritten"
)
