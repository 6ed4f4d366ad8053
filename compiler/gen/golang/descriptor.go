package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/odatagen/compiler/gen"
	"github.com/syssam/odatagen/compiler/load"
)

// kindIdent returns the identifier of a kind constant in the shared package.
func kindIdent(k load.Kind) string {
	return "Kind" + k.String()
}

// genDescriptor generates the model descriptor of one entity.
func (f *file) genDescriptor(d *gen.DescriptorDecl) {
	recv := jen.Id(d.Ident)
	f.Commentf("%s describes the %s entity type at run time.", d.Ident, d.Name)
	f.Type().Id(d.Ident).Struct()
	f.Var().Id("_").Add(f.shared("Model")).Op("=").Id(d.Ident).Values()

	f.Comment("Name returns the name of the entity type.")
	f.Func().Params(recv.Clone()).Id("Name").Params().String().Block(
		jen.Return(jen.Lit(d.Name)),
	)

	f.Comment("Fields returns the properties of the entity type in declaration order.")
	f.Func().Params(recv.Clone()).Id("Fields").Params().Index().Add(f.shared("Field")).Block(
		jen.Return(jen.Index().Add(f.shared("Field")).ValuesFunc(func(vals *jen.Group) {
			for _, fd := range d.Fields {
				typ := jen.Dict{jen.Id("Kind"): f.shared(kindIdent(fd.Kind))}
				if fd.Nullable {
					typ[jen.Id("Nullable")] = jen.True()
				}
				if fd.Key {
					typ[jen.Id("Key")] = jen.True()
				}
				vals.Values(jen.Dict{
					jen.Id("Name"): jen.Lit(fd.Name),
					jen.Id("Type"): f.shared("DataType").Values(typ),
				})
			}
		})),
	)

	if !d.Expand {
		return
	}
	f.Comment("Relations returns the navigation properties of the entity type.")
	f.Func().Params(recv.Clone()).Id("Relations").Params().Index().Add(f.shared("Relation")).BlockFunc(func(body *jen.Group) {
		if len(d.Relations) == 0 {
			body.Return(jen.Nil())
			return
		}
		body.Return(jen.Index().Add(f.shared("Relation")).ValuesFunc(func(vals *jen.Group) {
			for _, r := range d.Relations {
				vals.Values(jen.Dict{
					jen.Id("Name"):   jen.Lit(r.Name),
					jen.Id("Target"): jen.Lit(r.Target),
				})
			}
		}))
	})
}

// genEntityTypes generates the descriptor listing of a package.
func (f *file) genEntityTypes(d *gen.EntityTypesDecl) {
	f.Commentf("%s returns the descriptors of all entity types of the package.", gen.EntityTypesIdent)
	f.Func().Id(gen.EntityTypesIdent).Params().Index().Add(f.shared("Model")).Block(
		jen.Return(jen.Index().Add(f.shared("Model")).ValuesFunc(func(vals *jen.Group) {
			for _, m := range d.Descriptors {
				vals.Id(m).Values()
			}
		})),
	)
}
