package gen

import "github.com/syssam/odatagen/compiler/load"

// EntityDecl is the struct declaration of one entity type.
type EntityDecl struct {
	// Name is the CSDL name of the entity type.
	Name string
	// Ident is the Go identifier of the struct.
	Ident string
	// Fields holds the property fields followed by the navigation fields.
	Fields []*FieldDecl
}

// FieldDecl is one field of an entity struct.
type FieldDecl struct {
	// Name is the CSDL name of the property or navigation property.
	Name string
	// Ident is the Go identifier of the field.
	Ident string
	// Type is the Go type of the field.
	Type GoType
	// EmptyAsNil marks an optional text field whose empty wire value
	// decodes to nil.
	EmptyAsNil bool
	// WireName overrides the serialized name of the field. Empty when the
	// identifier already matches the wire name.
	WireName string
	// OmitEmpty marks a field that defaults to its zero value when absent.
	OmitEmpty bool
	// Navigation marks a field that holds a navigation property.
	Navigation bool
}

// Tag returns the json struct tag value of the field, or an empty string
// when the field needs none.
func (f *FieldDecl) Tag() string {
	if f.WireName == "" && !f.OmitEmpty {
		return ""
	}
	name := f.WireName
	if name == "" {
		name = f.Ident
	}
	if f.OmitEmpty {
		name += ",omitempty"
	}
	return name
}

// HasEmptyAsNil reports if any field of the entity carries the
// empty-string hint.
func (e *EntityDecl) HasEmptyAsNil() bool {
	for _, f := range e.Fields {
		if f.EmptyAsNil {
			return true
		}
	}
	return false
}

// DescriptorDecl is the run-time model descriptor paired with an entity.
type DescriptorDecl struct {
	// Name is the CSDL name of the described entity type.
	Name string
	// Ident is the Go identifier of the descriptor type.
	Ident string
	// Entity is the Go identifier of the described struct.
	Entity    string
	Fields    []FieldDescriptor
	Relations []RelationDescriptor
	// Expand reports if the descriptor implements Relations.
	Expand bool
}

// DescriptorIdent returns the identifier of the descriptor paired with the
// given entity identifier.
func DescriptorIdent(entity string) string {
	return entity + "Model"
}

// synthesizeEntity builds the struct declaration of e and, with reflection
// enabled, its descriptor. Navigation properties that cannot be resolved are
// returned as errors and left out of the declarations.
func synthesizeEntity(s *load.Schema, e *load.EntityType, c *Config) (*EntityDecl, *DescriptorDecl, []*ResolutionError) {
	decl := &EntityDecl{
		Name:   e.Name,
		Ident:  Ident(e.Name),
		Fields: make([]*FieldDecl, 0, len(e.Properties)+len(e.NavigationProperties)),
	}
	for _, p := range e.Properties {
		f := &FieldDecl{
			Name:       p.Name,
			Ident:      Ident(p.Name),
			Type:       MapType(p),
			EmptyAsNil: c.EmptyStringIsNull() && isOptionalText(p),
		}
		if f.Ident != p.Name {
			f.WireName = p.Name
		}
		decl.Fields = append(decl.Fields, f)
	}
	var (
		relations []RelationDescriptor
		errs      []*ResolutionError
	)
	if c.Expand() {
		relations, errs = RelationDescriptors(s, e)
		for _, r := range relations {
			target := Named(Ident(r.Target))
			t := SliceOf(target)
			if r.Shape == ShapeOptional {
				t = PointerTo(target)
			}
			decl.Fields = append(decl.Fields, &FieldDecl{
				Name:       r.Name,
				Ident:      Ident(r.Name),
				Type:       t,
				WireName:   r.Name,
				OmitEmpty:  true,
				Navigation: true,
			})
		}
	}
	if !c.Reflection() {
		return decl, nil, errs
	}
	desc := &DescriptorDecl{
		Name:      e.Name,
		Ident:     DescriptorIdent(decl.Ident),
		Entity:    decl.Ident,
		Fields:    FieldDescriptors(e),
		Relations: relations,
		Expand:    c.Expand(),
	}
	return decl, desc, errs
}
