package target

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/broady/xsdgen/xsdgen/ir"
)

func TestGeneratorConfig_Indent(t *testing.T) {
	tests := []struct {
		cfg  GeneratorConfig
		want string
	}{
		{GeneratorConfig{}, "    "},
		{GeneratorConfig{IndentStyle: "space", IndentSize: 2}, "  "},
		{GeneratorConfig{IndentStyle: "tab", IndentSize: 2}, "\t"},
	}
	for _, tt := range tests {
		if got := tt.cfg.Indent(); got != tt.want {
			t.Errorf("%+v.Indent() = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestGeneratorConfig_Finalize(t *testing.T) {
	tests := []struct {
		name string
		cfg  GeneratorConfig
		in   string
		want string
	}{
		{"unchanged", GeneratorConfig{LineEnding: "lf"}, "a\nb", "a\nb"},
		{"trailing newline", GeneratorConfig{TrailingNewline: true}, "a\nb", "a\nb\n"},
		{"already terminated", GeneratorConfig{TrailingNewline: true}, "a\n", "a\n"},
		{"crlf", GeneratorConfig{LineEnding: "crlf", TrailingNewline: true}, "a\nb", "a\r\nb\r\n"},
		{"crlf idempotent", GeneratorConfig{LineEnding: "crlf"}, "a\r\nb\n", "a\r\nb\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.cfg.Finalize([]byte(tt.in))); got != tt.want {
				t.Errorf("Finalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteComment(t *testing.T) {
	var buf bytes.Buffer
	WriteComment(&buf, "    ", "///", ir.NewDocumentation("First line.\n\nSecond paragraph."))
	want := "    /// First line.\n    ///\n    /// Second paragraph.\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteComment() = %q, want %q", got, want)
	}

	buf.Reset()
	WriteComment(&buf, "", "//", ir.Documentation{})
	if buf.Len() != 0 {
		t.Errorf("WriteComment(empty) wrote %q", buf.String())
	}
}

func TestParseOptions(t *testing.T) {
	got, err := ParseOptions([]string{"derive=Clone,Debug", "derive=PartialEq", "package=model", "empty="})
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}
	want := map[string][]string{
		"derive":  {"Clone", "Debug", "PartialEq"},
		"package": {"model"},
		"empty":   {""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseOptions() = %v, want %v", got, want)
	}

	for _, bad := range []string{"novalue", "=x"} {
		if _, err := ParseOptions([]string{bad}); err == nil {
			t.Errorf("ParseOptions(%q) succeeded, want error", bad)
		}
	}
}

type testOptions struct {
	Package string   `schema:"package" validate:"required"`
	Style   string   `schema:"style" validate:"oneof=a b"`
	Tags    []string `schema:"tag" validate:"dive,required"`
	Strict  bool     `schema:"strict"`
}

func TestDecodeOptions(t *testing.T) {
	opts := testOptions{Package: "types", Style: "a"}
	err := DecodeOptions(map[string][]string{"style": {"b"}, "tag": {"x", "y"}, "strict": {"true"}}, &opts)
	if err != nil {
		t.Fatalf("DecodeOptions() error = %v", err)
	}
	want := testOptions{Package: "types", Style: "b", Tags: []string{"x", "y"}, Strict: true}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("DecodeOptions() = %+v, want %+v", opts, want)
	}
}

func TestDecodeOptions_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		opts := testOptions{Package: "types", Style: "a"}
		if err := DecodeOptions(map[string][]string{"pakage": {"x"}}, &opts); err == nil {
			t.Error("DecodeOptions() succeeded with unknown key")
		}
	})

	t.Run("validation", func(t *testing.T) {
		opts := testOptions{Style: "c"}
		err := DecodeOptions(nil, &opts)

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("DecodeOptions() error = %v, want *ValidationError", err)
		}
		if len(ve.Fields) != 2 {
			t.Fatalf("Fields = %+v, want 2 entries", ve.Fields)
		}
		if ve.Fields[0].Field != "testOptions.Package" || ve.Fields[0].Message != "required" {
			t.Errorf("Fields[0] = %+v", ve.Fields[0])
		}
		if !strings.Contains(ve.Fields[1].Message, "one of: a b") {
			t.Errorf("Fields[1] = %+v", ve.Fields[1])
		}
		if !strings.HasPrefix(err.Error(), "invalid target.testOptions: ") {
			t.Errorf("Error() = %q", err.Error())
		}
	})
}
