package golang

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Initialisms kept upper case in exported names, as golint suggests.
var initialisms = map[string]bool{
	"API": true, "DNS": true, "HTML": true, "HTTP": true, "HTTPS": true,
	"ID": true, "IP": true, "JSON": true, "SQL": true, "TCP": true,
	"TLS": true, "UDP": true, "UI": true, "URI": true, "URL": true,
	"UTF8": true, "UUID": true, "XML": true,
}

// exportedField converts a snake_case field identifier to an exported Go
// name: "first_name" becomes "FirstName", "user_id" becomes "UserID".
func exportedField(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, "_") {
		if word == "" {
			continue
		}
		if up := strings.ToUpper(word); initialisms[up] {
			b.WriteString(up)
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	return exportedType(b.String())
}

// exportedType makes name a legal exported Go identifier. Invalid
// characters become underscores and names that do not start with an upper
// case letter get an X prefix.
func exportedType(name string) string {
	if name == "" {
		return "X"
	}

	var b strings.Builder
	r, size := utf8.DecodeRuneInString(name)
	switch {
	case unicode.IsUpper(r):
	case unicode.IsUpper(unicode.ToUpper(r)):
		b.WriteRune(unicode.ToUpper(r))
		name = name[size:]
	default:
		b.WriteByte('X')
	}
	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
