package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/odatagen/compiler/gen"
)

// genEntity generates the entity struct and, with serialization hints, its
// UnmarshalJSON method.
func (f *file) genEntity(e *gen.EntityDecl) {
	serde := f.config.Serde()
	f.Commentf("%s is the %s entity type.", e.Ident, e.Name)
	f.Type().Id(e.Ident).StructFunc(func(group *jen.Group) {
		for _, fd := range e.Fields {
			s := jen.Id(fd.Ident).Add(f.goType(fd.Type))
			if tag := fd.Tag(); serde && tag != "" {
				s.Tag(map[string]string{"json": tag})
			}
			group.Add(s)
		}
	})
	if !serde || !e.HasEmptyAsNil() {
		return
	}
	f.Comment("UnmarshalJSON implements json.Unmarshaler. Empty strings of optional")
	f.Comment("text fields are decoded as nil.")
	f.Func().Params(jen.Id("e").Op("*").Id(e.Ident)).Id("UnmarshalJSON").
		Params(jen.Id("data").Index().Byte()).Error().
		BlockFunc(func(body *jen.Group) {
			body.Type().Id("plain").Id(e.Ident)
			body.If(
				jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(
					jen.Id("data"),
					jen.Parens(jen.Op("*").Id("plain")).Call(jen.Id("e")),
				),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Err()))
			for _, fd := range e.Fields {
				if fd.EmptyAsNil {
					body.Id("e").Dot(fd.Ident).Op("=").Add(f.shared("EmptyStringAsNil")).Call(jen.Id("e").Dot(fd.Ident))
				}
			}
			body.Return(jen.Nil())
		})
}

// genAlias generates a type alias or a function variable.
func (f *file) genAlias(a *gen.AliasDecl) {
	switch a.Kind {
	case gen.AliasFunc:
		f.Var().Id(a.Ident).Op("=").Add(f.goType(a.Target))
	default:
		f.Type().Id(a.Ident).Op("=").Add(f.goType(a.Target))
	}
}
