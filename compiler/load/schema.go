// Package load decodes OData CSDL (EDMX) metadata documents into the
// schema graph consumed by the code generator.
package load

// Edmx is a decoded metadata document. It is immutable after loading.
type Edmx struct {
	// Version of the EDMX envelope, e.g. "1.0".
	Version string
	// Schemas in document order.
	Schemas []*Schema
}

// Schema represents a CSDL <Schema> element.
type Schema struct {
	Namespace    string
	EntityTypes  []*EntityType
	Associations []*Association
	Containers   []*Container
}

// EntityType represents a CSDL <EntityType> element.
type EntityType struct {
	Name string
	// Key is the name of the designated key property.
	Key                  string
	Properties           []*Property
	NavigationProperties []*NavigationProperty
}

// Property represents a primitive-typed CSDL <Property>.
type Property struct {
	Name     string
	Type     Kind
	Nullable bool
}

// NavigationProperty represents a CSDL <NavigationProperty>. Its target is
// not stored here; it is resolved against the schema associations.
type NavigationProperty struct {
	Name         string
	Relationship string
	FromRole     string
	ToRole       string
}

// Association represents a CSDL <Association> element.
type Association struct {
	Name string
	Ends []*End
}

// End is one end of an association. Every attribute is optional; an empty
// string means the attribute was absent.
type End struct {
	Role         string
	EntityType   string
	Multiplicity string
}

// Container represents a CSDL <EntityContainer>.
type Container struct {
	Name       string
	Default    bool
	EntitySets []*EntitySet
}

// EntitySet represents a CSDL <EntitySet>.
type EntitySet struct {
	Name string
	// EntityType is the qualified name of the set's entity type.
	EntityType string
}

// Multiplicity values of an association end.
const (
	MultiplicityZeroOrOne = "0..1"
	MultiplicityOne       = "1"
	MultiplicityMany      = "*"
)

// DefaultSchema returns the schema holding the default entity container,
// or nil if the document does not designate one.
func (e *Edmx) DefaultSchema() *Schema {
	for _, s := range e.Schemas {
		for _, c := range s.Containers {
			if c.Default {
				return s
			}
		}
	}
	return nil
}

// EntitySets returns the entity sets of all containers declared in the
// schema, or nil if the schema declares no container.
func (s *Schema) EntitySets() []*EntitySet {
	if len(s.Containers) == 0 {
		return nil
	}
	var sets []*EntitySet
	for _, c := range s.Containers {
		sets = append(sets, c.EntitySets...)
	}
	return sets
}

// EntityType returns the entity type with the given local name.
func (s *Schema) EntityType(name string) (*EntityType, bool) {
	for _, t := range s.EntityTypes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Property returns the property with the given name.
func (t *EntityType) Property(name string) (*Property, bool) {
	for _, p := range t.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// KeyProperty returns the designated key property.
func (t *EntityType) KeyProperty() *Property {
	p, _ := t.Property(t.Key)
	return p
}
