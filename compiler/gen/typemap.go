package gen

import (
	"fmt"
	"path"

	"github.com/syssam/odatagen/compiler/load"
)

// GoType describes a Go type expression of a generated field. It is either
// a named type (optionally qualified by an import path), or a pointer or
// slice of another GoType.
type GoType struct {
	// Op is "*" for pointers, "[]" for slices and empty for named types.
	Op string
	// Elem is the element type of pointers and slices.
	Elem *GoType
	// PkgPath is the import path of a qualified named type. Empty for
	// builtins and types declared in the same package.
	PkgPath string
	// Name of the named type.
	Name string
}

// Named returns a named type in the current package or a builtin.
func Named(name string) GoType {
	return GoType{Name: name}
}

// Qualified returns a named type declared in another package.
func Qualified(pkgPath, name string) GoType {
	return GoType{PkgPath: pkgPath, Name: name}
}

// PointerTo returns *t.
func PointerTo(t GoType) GoType {
	return GoType{Op: "*", Elem: &t}
}

// SliceOf returns []t.
func SliceOf(t GoType) GoType {
	return GoType{Op: "[]", Elem: &t}
}

// IsPointer reports if t is a pointer type.
func (t GoType) IsPointer() bool { return t.Op == "*" }

// IsSlice reports if t is a slice type.
func (t GoType) IsSlice() bool { return t.Op == "[]" }

// String returns the type as written in Go source, using the last import
// path element as package qualifier.
func (t GoType) String() string {
	switch {
	case t.Elem != nil:
		return t.Op + t.Elem.String()
	case t.PkgPath != "":
		return path.Base(t.PkgPath) + "." + t.Name
	default:
		return t.Name
	}
}

// BaseType returns the Go type of a primitive kind.
func BaseType(k load.Kind) GoType {
	switch k {
	case load.Binary:
		return SliceOf(Named("byte"))
	case load.Boolean:
		return Named("bool")
	case load.Byte:
		return Named("uint8")
	case load.DateTime:
		return Qualified("time", "Time")
	case load.DateTimeOffset:
		return Qualified("time", "Duration")
	case load.Decimal, load.Double:
		return Named("float64")
	case load.Int16:
		return Named("int16")
	case load.Int32:
		return Named("int32")
	case load.String:
		return Named("string")
	default:
		panic(fmt.Sprintf("odatagen: unexpected primitive kind %d", k))
	}
}

// MapType returns the Go type of a property. Nullable properties are
// mapped to pointers.
func MapType(p *load.Property) GoType {
	t := BaseType(p.Type)
	if p.Nullable {
		return PointerTo(t)
	}
	return t
}

// isOptionalText reports if the property maps to *string.
func isOptionalText(p *load.Property) bool {
	return p.Nullable && p.Type == load.String
}
