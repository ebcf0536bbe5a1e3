// Package naming maps XML Schema identifiers to target-language identifiers.
//
// Type identifiers are PascalCase. Field identifiers are snake_case; target
// emitters escape or re-case them as their language requires.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TypeIdentifier converts a raw schema name to a PascalCase type identifier.
//
// Names containing separators (runes that are neither letters nor digits)
// or no lowercase letters are split into words; each word is capitalized and the
// rest of it lowercased. The rule is re-applied until the result is stable,
// so "NMTOKEN" becomes "Nmtoken" and "some_name" becomes "SomeName".
// Mixed-case names without separators keep their casing and only get an
// uppercase first letter. Letters outside ASCII are kept: "größe" becomes
// "Größe".
func TypeIdentifier(raw string) string {
	s := raw
	for needsSplit(s) {
		next := joinWords(s)
		if next == s {
			break
		}
		s = next
	}
	return upperFirst(s)
}

// FieldIdentifier converts a raw schema name to a snake_case identifier.
//
// An underscore is inserted before every uppercase letter that follows a
// lowercase letter or digit, everything is lowercased, and each separator
// rune maps to one underscore: "SomeName" becomes "some_name", "HTTPCode"
// becomes "httpcode".
func FieldIdentifier(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 4)

	var prev rune
	for i, r := range raw {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		case isSeparator(r):
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// Nested returns the type identifier for an anonymous type owned by child of
// owner. Prefixing with the owner's resolved name keeps identically named
// children of different parents apart.
func Nested(owner, child string) string {
	return TypeIdentifier(owner + "_" + child)
}

// StripPrefix removes a namespace prefix from a qualified name.
func StripPrefix(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// needsSplit reports whether s has separators or lacks lowercase letters.
func needsSplit(s string) bool {
	hasLower := false
	for _, r := range s {
		if isSeparator(r) {
			return true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	return !hasLower
}

// joinWords capitalizes each separator-delimited word and concatenates them.
func joinWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	capNext := true
	for _, r := range s {
		switch {
		case isSeparator(r):
			capNext = true
		case capNext:
			b.WriteRune(unicode.ToUpper(r))
			capNext = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// isSeparator reports whether r breaks words: any rune that is neither a
// letter nor a digit.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
