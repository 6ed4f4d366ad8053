package load

import "strings"

// Kind is the primitive EDM type of a property. The set is closed.
type Kind uint8

// Primitive kinds.
const (
	_ Kind = iota
	Binary
	Boolean
	Byte
	DateTime
	DateTimeOffset
	Decimal
	Double
	Int16
	Int32
	String
)

var kindNames = [...]string{
	Binary:         "Binary",
	Boolean:        "Boolean",
	Byte:           "Byte",
	DateTime:       "DateTime",
	DateTimeOffset: "DateTimeOffset",
	Decimal:        "Decimal",
	Double:         "Double",
	Int16:          "Int16",
	Int32:          "Int32",
	String:         "String",
}

// Kinds returns every primitive kind in declaration order.
func Kinds() []Kind {
	return []Kind{Binary, Boolean, Byte, DateTime, DateTimeOffset, Decimal, Double, Int16, Int32, String}
}

// String returns the EDM name of the kind without the "Edm." prefix.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "invalid"
}

// Valid reports if k is one of the primitive kinds.
func (k Kind) Valid() bool {
	return k >= Binary && k <= String
}

// ParseKind parses a CSDL type name such as "Edm.Int32".
func ParseKind(s string) (Kind, bool) {
	name := strings.TrimPrefix(s, "Edm.")
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}
