package gen

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
	lower    = cases.Lower(language.Und)

	// reserved holds identifiers of methods generated on entity structs.
	reserved = map[string]struct{}{
		"UnmarshalJSON": {},
	}
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Add common initialisms from golint and more.
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "MAC", "MB", "QPS",
		"RAM", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO", "TCP", "TLS", "TTL",
		"UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM", "XML", "XMPP",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// AddAcronym adds a new acronym to the identifier rules.
func AddAcronym(word string) {
	acronyms[strings.ToUpper(word)] = struct{}{}
	rules.AddAcronym(word)
}

// isSeparator reports if r cannot be part of a word of an identifier.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func pascalWords(words []string) string {
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
		} else if r, n := utf8.DecodeRuneInString(w); r >= utf8.RuneSelf {
			words[i] = string(unicode.ToUpper(r)) + w[n:]
		} else {
			words[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// pascal converts a source name to an exported Go identifier.
//
//	user_info  => UserInfo
//	Id         => ID
//	type       => Type
func pascal(s string) string {
	return pascalWords(strings.FieldsFunc(s, isSeparator))
}

// Ident returns the exported Go identifier for a CSDL name. Names that do
// not start with a letter get an "X" prefix, and names of generated methods
// get a trailing underscore.
func Ident(name string) string {
	id := pascal(name)
	if r, _ := utf8.DecodeRuneInString(id); !unicode.IsLetter(r) || !unicode.IsUpper(r) {
		id = "X" + id
	}
	if _, ok := reserved[id]; ok {
		id += "_"
	}
	return id
}

// PackageSegment returns the package name for one namespace segment.
// Characters that cannot appear in an identifier become underscores,
// segments that do not start with a letter get an "x" prefix, and Go
// keywords get a trailing underscore.
func PackageSegment(segment string) string {
	s := strings.Map(func(r rune) rune {
		if r != '_' && isSeparator(r) {
			return '_'
		}
		return r
	}, lower.String(segment))
	if r, _ := utf8.DecodeRuneInString(s); !unicode.IsLetter(r) {
		s = "x" + s
	}
	if token.IsKeyword(s) {
		s += "_"
	}
	return s
}

// NamespacePath splits a dotted namespace into package segments.
func NamespacePath(namespace string) []string {
	parts := strings.Split(namespace, ".")
	for i, p := range parts {
		parts[i] = PackageSegment(p)
	}
	return parts
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
