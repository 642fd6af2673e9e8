package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scopePrefix is the module alias implementations use when referencing
// generated protocol identifiers.
const scopePrefix = "m::"

// LowerFirst lowercases only the leading rune of name, mapping a PascalCase
// domain name to the lowercase-leading form used inside compound
// implementation identifiers. Empty input is returned unchanged.
func LowerFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

// UpperFirst uppercases only the leading rune of name, mapping a camelCase
// entity name to the PascalCase form used for request, response and
// notification identifiers. Empty input is returned unchanged.
func UpperFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// QualifiedName renders the canonical "<Domain>.<entity>" form. It is both
// the reference-map key and the wire-format method name implementations
// dispatch on.
func QualifiedName(domain, entity string) string {
	return domain + "." + entity
}

// QuotedLiteral renders a qualified name as it appears quoted in the
// implementation source, with embedded quote characters backslash-escaped.
func QuotedLiteral(qualified string) string {
	return `"` + strings.ReplaceAll(qualified, `"`, `\"`) + `"`
}

// CommandCandidates returns every implementation-side spelling of a command:
// the scoped request and response identifiers plus the quoted wire name.
func CommandCandidates(domain, command string) []string {
	scoped := scopePrefix + LowerFirst(domain) + "::" + UpperFirst(command)
	return []string{
		scoped + "Request",
		scoped + "Response",
		QuotedLiteral(QualifiedName(domain, command)),
	}
}

// EventCandidates returns every implementation-side spelling of an event: the
// scoped notification identifier plus the quoted wire name.
func EventCandidates(domain, event string) []string {
	return []string{
		scopePrefix + LowerFirst(domain) + "::" + UpperFirst(event) + "Notification",
		QuotedLiteral(QualifiedName(domain, event)),
	}
}

// TypeCandidates returns the implementation-side spelling of a protocol type.
func TypeCandidates(domain, id string) []string {
	return []string{LowerFirst(domain) + "::" + UpperFirst(id)}
}
