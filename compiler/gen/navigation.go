package gen

import (
	"strings"

	"github.com/syssam/odatagen/compiler/load"
)

// Shape is the Go shape of a navigation field.
type Shape int

const (
	// ShapeOptional is a single optional reference (*T).
	ShapeOptional Shape = iota + 1
	// ShapeCollection is an ordered collection of references ([]T).
	ShapeCollection
)

// Target is the resolved end of a navigation property.
type Target struct {
	// Entity is the local (namespace-stripped) name of the target entity type.
	Entity string
	// Multiplicity of the matched association end.
	Multiplicity string
}

// Shape returns the field shape for the target multiplicity. Only "0..1"
// maps to a single reference; "1" and "*" both map to a collection.
func (t Target) Shape() Shape {
	if t.Multiplicity == load.MultiplicityZeroOrOne {
		return ShapeOptional
	}
	return ShapeCollection
}

// ResolveNavigation resolves the target of a navigation property declared
// on e. Associations are scanned in document order and their ends in
// declaration order; the first end whose role equals the navigation's
// ToRole and that references an entity type decides the result.
func ResolveNavigation(s *load.Schema, e *load.EntityType, n *load.NavigationProperty) (Target, error) {
	for _, a := range s.Associations {
		for _, end := range a.Ends {
			if end.Role == "" || end.Role != n.ToRole || end.EntityType == "" {
				continue
			}
			name, ok := strings.CutPrefix(end.EntityType, s.Namespace+".")
			if !ok {
				return Target{}, newResolutionError(s, e, n, "target "+end.EntityType+" is outside the schema namespace")
			}
			if end.Multiplicity == "" {
				return Target{}, newResolutionError(s, e, n, "association "+a.Name+" end has no multiplicity")
			}
			return Target{Entity: name, Multiplicity: end.Multiplicity}, nil
		}
	}
	return Target{}, newResolutionError(s, e, n, "no association end matches the role")
}

func newResolutionError(s *load.Schema, e *load.EntityType, n *load.NavigationProperty, reason string) *ResolutionError {
	return &ResolutionError{
		Schema:     s.Namespace,
		Entity:     e.Name,
		Navigation: n.Name,
		Role:       n.ToRole,
		Reason:     reason,
	}
}
