package gen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/broady/xsdgen/cmd/xsdgen/internal/flags"
)

const personXSD = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:complexType name="Person">
    <xs:sequence>
      <xs:element name="name" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

const orderXSD = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:complexType name="Order">
    <xs:attribute name="id" type="xs:long" use="required"/>
  </xs:complexType>
</xs:schema>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRun_SingleInput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "person.xsd", personXSD)
	out := filepath.Join(dir, "out")

	var stdout bytes.Buffer
	cmd := &Cmd{Inputs: []string{input}, Out: out, IR: true}
	if err := cmd.Run(context.Background(), discardLogger(), &stdout); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	code, err := os.ReadFile(filepath.Join(out, "types.rs"))
	if err != nil {
		t.Fatalf("types.rs not written: %v", err)
	}
	if !bytes.Contains(code, []byte("pub struct Person {")) {
		t.Errorf("types.rs:\n%s", code)
	}
	if _, err := os.Stat(filepath.Join(out, "schema.ir.json")); err != nil {
		t.Errorf("IR not written: %v", err)
	}
	if !strings.Contains(stdout.String(), "(1 types)") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRun_MultipleInputs(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeFile(t, dir, "person.xsd", personXSD),
		writeFile(t, dir, "order.xsd", orderXSD),
	}
	out := filepath.Join(dir, "out")

	cmd := &Cmd{
		Inputs:     inputs,
		Out:        out,
		Jobs:       2,
		Generation: flags.Generation{Target: "go", Option: []string{"package=model"}},
	}
	if err := cmd.Run(context.Background(), discardLogger(), &bytes.Buffer{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for file, want := range map[string]string{
		"person.go": "type Person struct",
		"order.go":  "ID int64 `xml:\"id,attr\"`",
	} {
		code, err := os.ReadFile(filepath.Join(out, file))
		if err != nil {
			t.Fatalf("%s not written: %v", file, err)
		}
		if !strings.Contains(string(code), "package model") || !strings.Contains(string(code), want) {
			t.Errorf("%s missing %q:\n%s", file, want, code)
		}
	}
}

func TestRun_OutDirFromConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "person.xsd", personXSD)
	out := filepath.Join(dir, "from-config")
	config := writeFile(t, dir, "xsdgen.yaml", "out_dir: "+out+"\nfile_name: person.rs\n")

	cmd := &Cmd{Inputs: []string{input}, Generation: flags.Generation{Config: config}}
	if err := cmd.Run(context.Background(), discardLogger(), &bytes.Buffer{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "person.rs")); err != nil {
		t.Errorf("person.rs not written: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "person.xsd", personXSD)
	choice := writeFile(t, dir, "choice.xsd", `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:complexType name="Shape"><xs:choice><xs:element name="circle"/></xs:choice></xs:complexType>
</xs:schema>`)

	tests := []struct {
		name    string
		cmd     Cmd
		wantErr string
	}{
		{"no output", Cmd{Inputs: []string{input}}, "output directory required"},
		{"unsupported", Cmd{Inputs: []string{input, choice}, Out: filepath.Join(dir, "out")}, "choice.xsd"},
		{"bad option", Cmd{Inputs: []string{input}, Out: dir, Generation: flags.Generation{Option: []string{"visibility=public"}}}, "Visibility"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(context.Background(), discardLogger(), &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Run() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
