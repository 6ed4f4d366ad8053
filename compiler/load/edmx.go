package load

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// The xml* types mirror the EDMX document. Element and attribute names are
// matched on their local part, so the same structs decode every CSDL
// namespace revision (2006/04, 2008/09, 2009/11).
type (
	xmlEdmx struct {
		XMLName      xml.Name        `xml:"Edmx"`
		Version      string          `xml:"Version,attr"`
		DataServices xmlDataServices `xml:"DataServices"`
	}

	xmlDataServices struct {
		Schema []xmlSchema `xml:"Schema"`
	}

	xmlSchema struct {
		Namespace       string               `xml:"Namespace,attr"`
		EntityType      []xmlEntityType      `xml:"EntityType"`
		Association     []xmlAssociation     `xml:"Association"`
		EntityContainer []xmlEntityContainer `xml:"EntityContainer"`
	}

	xmlEntityType struct {
		Name               string                  `xml:"Name,attr"`
		Key                xmlKey                  `xml:"Key"`
		Property           []xmlProperty           `xml:"Property"`
		NavigationProperty []xmlNavigationProperty `xml:"NavigationProperty"`
	}

	xmlKey struct {
		PropertyRef []xmlPropertyRef `xml:"PropertyRef"`
	}

	xmlPropertyRef struct {
		Name string `xml:"Name,attr"`
	}

	xmlProperty struct {
		Name     string `xml:"Name,attr"`
		Type     string `xml:"Type,attr"`
		Nullable *bool  `xml:"Nullable,attr"`
	}

	xmlNavigationProperty struct {
		Name         string `xml:"Name,attr"`
		Relationship string `xml:"Relationship,attr"`
		FromRole     string `xml:"FromRole,attr"`
		ToRole       string `xml:"ToRole,attr"`
	}

	xmlAssociation struct {
		Name string   `xml:"Name,attr"`
		End  []xmlEnd `xml:"End"`
	}

	xmlEnd struct {
		Role         string `xml:"Role,attr"`
		Type         string `xml:"Type,attr"`
		Multiplicity string `xml:"Multiplicity,attr"`
	}

	xmlEntityContainer struct {
		Name                     string         `xml:"Name,attr"`
		IsDefaultEntityContainer bool           `xml:"IsDefaultEntityContainer,attr"`
		EntitySet                []xmlEntitySet `xml:"EntitySet"`
	}

	xmlEntitySet struct {
		Name       string `xml:"Name,attr"`
		EntityType string `xml:"EntityType,attr"`
	}
)

// File reads and decodes the metadata document at path. A failure to read
// the file is returned as is; a malformed document yields a *ParseError.
func File(path string) (*Edmx, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return Parse(bytes.NewReader(buf))
}

// Parse decodes a metadata document from r.
func Parse(r io.Reader) (*Edmx, error) {
	var doc xmlEdmx
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ParseError{Message: "decode EDMX", Cause: err}
	}
	edmx := &Edmx{
		Version: doc.Version,
		Schemas: make([]*Schema, 0, len(doc.DataServices.Schema)),
	}
	for i := range doc.DataServices.Schema {
		s, err := newSchema(&doc.DataServices.Schema[i])
		if err != nil {
			return nil, err
		}
		edmx.Schemas = append(edmx.Schemas, s)
	}
	return edmx, nil
}

func newSchema(xs *xmlSchema) (*Schema, error) {
	if xs.Namespace == "" {
		return nil, &ParseError{Element: "Schema", Message: "missing Namespace attribute"}
	}
	s := &Schema{Namespace: xs.Namespace}
	for i := range xs.EntityType {
		t, err := newEntityType(xs.Namespace, &xs.EntityType[i])
		if err != nil {
			return nil, err
		}
		s.EntityTypes = append(s.EntityTypes, t)
	}
	for _, xa := range xs.Association {
		a := &Association{Name: xa.Name}
		for _, xe := range xa.End {
			switch xe.Multiplicity {
			case "", MultiplicityZeroOrOne, MultiplicityOne, MultiplicityMany:
			default:
				return nil, &ParseError{
					Schema:  xs.Namespace,
					Element: "Association " + xa.Name,
					Message: fmt.Sprintf("invalid multiplicity %q on end %q", xe.Multiplicity, xe.Role),
				}
			}
			a.Ends = append(a.Ends, &End{Role: xe.Role, EntityType: xe.Type, Multiplicity: xe.Multiplicity})
		}
		s.Associations = append(s.Associations, a)
	}
	for _, xc := range xs.EntityContainer {
		c := &Container{Name: xc.Name, Default: xc.IsDefaultEntityContainer}
		for _, set := range xc.EntitySet {
			c.EntitySets = append(c.EntitySets, &EntitySet{Name: set.Name, EntityType: set.EntityType})
		}
		s.Containers = append(s.Containers, c)
	}
	return s, nil
}

func newEntityType(ns string, xt *xmlEntityType) (*EntityType, error) {
	element := "EntityType " + xt.Name
	t := &EntityType{Name: xt.Name}
	for _, xp := range xt.Property {
		kind, ok := ParseKind(xp.Type)
		if !ok {
			return nil, &ParseError{
				Schema:  ns,
				Element: element,
				Message: fmt.Sprintf("property %q has unsupported type %q", xp.Name, xp.Type),
			}
		}
		// CSDL properties are nullable unless stated otherwise.
		nullable := true
		if xp.Nullable != nil {
			nullable = *xp.Nullable
		}
		t.Properties = append(t.Properties, &Property{Name: xp.Name, Type: kind, Nullable: nullable})
	}
	for _, xn := range xt.NavigationProperty {
		t.NavigationProperties = append(t.NavigationProperties, &NavigationProperty{
			Name:         xn.Name,
			Relationship: xn.Relationship,
			FromRole:     xn.FromRole,
			ToRole:       xn.ToRole,
		})
	}
	// Composite keys designate their first property.
	if len(xt.Key.PropertyRef) == 0 {
		return nil, &ParseError{Schema: ns, Element: element, Message: "missing key"}
	}
	t.Key = xt.Key.PropertyRef[0].Name
	if _, ok := t.Property(t.Key); !ok {
		return nil, &ParseError{
			Schema:  ns,
			Element: element,
			Message: fmt.Sprintf("key %q does not name a property", t.Key),
		}
	}
	return t, nil
}
