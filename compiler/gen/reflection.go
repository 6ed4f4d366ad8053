package gen

import "github.com/syssam/odatagen/compiler/load"

// FieldDescriptor is the run-time description of one entity property.
type FieldDescriptor struct {
	Name     string
	Kind     load.Kind
	Nullable bool
	Key      bool
}

// RelationDescriptor is the run-time description of one navigation property.
type RelationDescriptor struct {
	Name   string
	Target string
	// Shape of the navigation field.
	Shape Shape
}

// FieldDescriptors returns one descriptor per property of e, in declaration
// order. Exactly the property named by e.Key is flagged as key.
func FieldDescriptors(e *load.EntityType) []FieldDescriptor {
	fields := make([]FieldDescriptor, len(e.Properties))
	for i, p := range e.Properties {
		fields[i] = FieldDescriptor{
			Name:     p.Name,
			Kind:     p.Type,
			Nullable: p.Nullable,
			Key:      p.Name == e.Key,
		}
	}
	return fields
}

// RelationDescriptors returns one descriptor per navigation property of e.
// Unresolved navigations are returned as errors and left out of the table.
func RelationDescriptors(s *load.Schema, e *load.EntityType) ([]RelationDescriptor, []*ResolutionError) {
	var (
		relations = make([]RelationDescriptor, 0, len(e.NavigationProperties))
		errs      []*ResolutionError
	)
	for _, n := range e.NavigationProperties {
		target, err := ResolveNavigation(s, e, n)
		if err != nil {
			errs = append(errs, err.(*ResolutionError))
			continue
		}
		if _, ok := s.EntityType(target.Entity); !ok {
			errs = append(errs, newResolutionError(s, e, n, "target entity "+target.Entity+" is not declared"))
			continue
		}
		relations = append(relations, RelationDescriptor{Name: n.Name, Target: target.Entity, Shape: target.Shape()})
	}
	return relations, errs
}
