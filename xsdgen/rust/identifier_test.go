package rust

import "testing"

func TestEscapeIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"name", "name"},
		{"type", "r#type"},
		{"match", "r#match"},
		{"async", "r#async"},
		{"self", "self_"},
		{"Self", "Self_"},
		{"crate", "crate_"},
		{"Type", "Type"},
		{"1st", "_1st"},
		{"", "_"},
		{"a-b", "a_b"},
		{"größe", "größe"},
		{"Grüße", "Grüße"},
		{"a·b", "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := escapeIdentifier(tt.input); got != tt.want {
				t.Errorf("escapeIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
