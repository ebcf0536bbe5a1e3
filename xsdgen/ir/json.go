package ir

import "github.com/goccy/go-json"

// JSON serialization support for IR types.
// All descriptors include a "kind" field for type discrimination.

// MarshalJSON implements json.Marshaler for StructDescriptor.
func (d *StructDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind   string            `json:"kind"`
		Name   string            `json:"name"`
		Fields []FieldDescriptor `json:"fields"`
		Doc    string            `json:"doc,omitempty"`
		Path   string            `json:"path,omitempty"`
	}{
		Kind:   "struct",
		Name:   d.Name,
		Fields: d.Fields,
		Doc:    d.Documentation.Summary,
		Path:   d.Source.Path,
	})
}

// MarshalJSON implements json.Marshaler for AliasDescriptor.
func (d *AliasDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind       string         `json:"kind"`
		Name       string         `json:"name"`
		Underlying TypeDescriptor `json:"underlying"`
		Doc        string         `json:"doc,omitempty"`
		Path       string         `json:"path,omitempty"`
	}{
		Kind:       "alias",
		Name:       d.Name,
		Underlying: d.Underlying,
		Doc:        d.Documentation.Summary,
		Path:       d.Source.Path,
	})
}

// MarshalJSON implements json.Marshaler for EnumDescriptor.
func (d *EnumDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string       `json:"kind"`
		Name    string       `json:"name"`
		Members []EnumMember `json:"members"`
		Doc     string       `json:"doc,omitempty"`
		Path    string       `json:"path,omitempty"`
	}{
		Kind:    "enum",
		Name:    d.Name,
		Members: d.Members,
		Doc:     d.Documentation.Summary,
		Path:    d.Source.Path,
	})
}

// MarshalJSON implements json.Marshaler for PrimitiveDescriptor.
func (d *PrimitiveDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string `json:"kind"`
		PrimitiveKind string `json:"primitiveKind"`
		BitSize       int    `json:"bitSize,omitempty"`
	}{
		Kind:          "primitive",
		PrimitiveKind: d.PrimitiveKind.String(),
		BitSize:       d.BitSize,
	})
}

// MarshalJSON implements json.Marshaler for ArrayDescriptor.
func (d *ArrayDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
	}{
		Kind:    "array",
		Element: d.Element,
	})
}

// MarshalJSON implements json.Marshaler for ReferenceDescriptor.
func (d *ReferenceDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{
		Kind: "reference",
		Name: d.Target,
	})
}

// MarshalJSON implements json.Marshaler for OptionalDescriptor.
func (d *OptionalDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
	}{
		Kind:    "optional",
		Element: d.Element,
	})
}

// MarshalJSON implements json.Marshaler for FieldDescriptor.
func (f FieldDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name     string         `json:"name"`
		WireName string         `json:"wireName,omitempty"`
		Role     string         `json:"role"`
		Type     TypeDescriptor `json:"type"`
		Default  bool           `json:"default,omitempty"`
		Doc      string         `json:"doc,omitempty"`
	}{
		Name:     f.Name,
		WireName: f.WireName,
		Role:     f.Role.String(),
		Type:     f.Type,
		Default:  f.Default,
		Doc:      f.Documentation.Summary,
	})
}

// MarshalJSON implements json.Marshaler for Schema.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Namespace string           `json:"namespace,omitempty"`
		Types     []TypeDescriptor `json:"types"`
		Warnings  []Warning        `json:"warnings,omitempty"`
	}{
		Namespace: s.Namespace,
		Types:     s.Types,
		Warnings:  s.Warnings,
	})
}

// MarshalIndent renders the schema as indented JSON for debugging dumps.
func (s *Schema) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
