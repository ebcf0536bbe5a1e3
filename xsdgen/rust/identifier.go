package rust

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rust strict and reserved keywords.
var reservedWords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true,

	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"gen": true, "macro": true, "override": true, "priv": true, "try": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
}

// Keywords that cannot be written as raw identifiers.
var nonRawWords = map[string]bool{
	"crate": true, "self": true, "Self": true, "super": true,
}

// escapeIdentifier makes name a legal Rust identifier. Reserved words become
// raw identifiers (r#type); the few keywords that cannot be raw get a
// trailing underscore.
func escapeIdentifier(name string) string {
	name = sanitizeIdentifier(name)
	switch {
	case nonRawWords[name]:
		return name + "_"
	case reservedWords[name]:
		return "r#" + name
	default:
		return name
	}
}

// sanitizeIdentifier replaces characters that are not valid in an
// identifier and prefixes names that start with a digit. Non-ASCII letters
// are valid Rust identifier characters and are kept.
func sanitizeIdentifier(name string) string {
	if name == "" {
		return "_"
	}

	var b strings.Builder
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		b.WriteByte('_')
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
