package ir

// Schema is the complete set of types generated from one schema tree.
type Schema struct {
	// Namespace is the target namespace of the source schema, if any.
	Namespace string

	// Types contains named type descriptors in emission order.
	// Only Struct, Alias, and Enum descriptors appear here.
	//
	// Ordering: a struct may reference a nested type that appears after it.
	// Generators MUST tolerate forward references; SortByDependency produces
	// a dependencies-first order for targets that prefer one.
	Types []TypeDescriptor

	// Warnings contains non-fatal issues encountered during schema building.
	Warnings []Warning
}

// AddType adds a named type descriptor to the schema.
func (s *Schema) AddType(t TypeDescriptor) {
	s.Types = append(s.Types, t)
}

// AddWarning adds a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindType looks up a type by name. Returns nil if not found.
func (s *Schema) FindType(name string) TypeDescriptor {
	for _, t := range s.Types {
		if t.TypeName() == name {
			return t
		}
	}
	return nil
}

// Validate checks the schema for structural issues.
// Returns all validation errors found (not just the first).
func (s *Schema) Validate() []error {
	var errors []*ValidationError

	typeNames := make(map[string]bool)
	for _, t := range s.Types {
		name := t.TypeName()
		if name == "" {
			errors = append(errors, &ValidationError{
				Code:    "missing_name",
				Message: "unnamed " + t.Kind().String() + " in schema types",
			})
			continue
		}
		if typeNames[name] {
			errors = append(errors, &ValidationError{
				Code:    "duplicate_type",
				Message: "duplicate type name: " + name,
			})
		}
		typeNames[name] = true
	}

	for _, t := range s.Types {
		switch d := t.(type) {
		case *StructDescriptor:
			seen := make(map[string]bool, len(d.Fields))
			for _, f := range d.Fields {
				if seen[f.Name] {
					errors = append(errors, &ValidationError{
						Code:    "duplicate_field",
						Message: "duplicate field " + d.Name + "." + f.Name,
					})
				}
				seen[f.Name] = true
				if f.Type == nil {
					errors = append(errors, &ValidationError{
						Code:    "missing_field_type",
						Message: "field " + d.Name + "." + f.Name + " has no type",
					})
				}
			}
		case *EnumDescriptor:
			if len(d.Members) == 0 {
				errors = append(errors, &ValidationError{
					Code:    "empty_enum",
					Message: "enum " + d.Name + " has no members",
				})
			}
			seen := make(map[string]bool, len(d.Members))
			for _, m := range d.Members {
				if seen[m.Name] {
					errors = append(errors, &ValidationError{
						Code:    "duplicate_enum_member",
						Message: "duplicate enum member " + d.Name + "." + m.Name,
					})
				}
				seen[m.Name] = true
			}
		case *AliasDescriptor:
			if d.Underlying == nil {
				errors = append(errors, &ValidationError{
					Code:    "missing_underlying_type",
					Message: "alias " + d.Name + " has no underlying type",
				})
			}
		}
	}

	// Convert ValidationErrors to regular errors
	var result []error
	for _, e := range errors {
		result = append(result, e)
	}
	return result
}

// UnresolvedReferences returns a warning for every reference whose target is
// not among the schema's types. Such references usually point into another
// schema document and are not errors.
func (s *Schema) UnresolvedReferences() []Warning {
	typeNames := make(map[string]bool, len(s.Types))
	for _, t := range s.Types {
		typeNames[t.TypeName()] = true
	}

	var warnings []Warning
	for _, t := range s.Types {
		for _, target := range References(t) {
			if !typeNames[target] {
				warnings = append(warnings, Warning{
					Code:     WarnMissingReference,
					Message:  t.TypeName() + " references unknown type " + target,
					Path:     t.Src().Path,
					TypeName: t.TypeName(),
				})
			}
		}
	}
	return warnings
}

// References returns the names of all types referenced by td, in field order,
// without duplicates.
func References(td TypeDescriptor) []string {
	var refs []string
	seen := make(map[string]bool)

	var walk func(TypeDescriptor)
	walk = func(td TypeDescriptor) {
		switch d := td.(type) {
		case *ReferenceDescriptor:
			if !seen[d.Target] {
				seen[d.Target] = true
				refs = append(refs, d.Target)
			}
		case *ArrayDescriptor:
			walk(d.Element)
		case *OptionalDescriptor:
			walk(d.Element)
		case *StructDescriptor:
			for _, f := range d.Fields {
				walk(f.Type)
			}
		case *AliasDescriptor:
			walk(d.Underlying)
		}
	}
	walk(td)
	return refs
}

// ValidationError represents a schema validation error.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
