package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/odatagen/compiler/gen"
	"github.com/syssam/odatagen/compiler/load"
)

// genShared generates the shared package holding the reflection contract
// and the decoding helpers.
func (g *generator) genShared() *jen.File {
	f := g.newFile(g.config.SharedImportPath(), gen.SharedPackage)
	f.PackageComment("Package " + gen.SharedPackage + " holds the types shared by the generated entity packages.")
	if g.config.Reflection() {
		genContract(f)
	}
	if g.config.EmptyStringIsNull() {
		f.Comment("EmptyStringAsNil returns nil for a pointer to an empty string, and s otherwise.")
		f.Func().Id("EmptyStringAsNil").Params(jen.Id("s").Op("*").String()).Op("*").String().Block(
			jen.If(jen.Id("s").Op("!=").Nil().Op("&&").Op("*").Id("s").Op("==").Lit("")).Block(
				jen.Return(jen.Nil()),
			),
			jen.Return(jen.Id("s")),
		)
	}
	return f.File
}

func genContract(f *file) {
	kinds := load.Kinds()
	f.Comment("Kind is the primitive type of an entity property.")
	f.Type().Id("Kind").Uint8()
	f.Comment("Primitive kinds.")
	f.Const().DefsFunc(func(defs *jen.Group) {
		for i, k := range kinds {
			if i == 0 {
				defs.Id(kindIdent(k)).Id("Kind").Op("=").Iota().Op("+").Lit(1)
				continue
			}
			defs.Id(kindIdent(k))
		}
	})
	f.Var().Id("kindNames").Op("=").Index(jen.Op("...")).String().ValuesFunc(func(vals *jen.Group) {
		vals.Lit("invalid")
		for _, k := range kinds {
			vals.Lit(k.String())
		}
	})
	f.Comment("String returns the EDM name of the kind.")
	f.Func().Params(jen.Id("k").Id("Kind")).Id("String").Params().String().Block(
		jen.If(jen.Int().Call(jen.Id("k")).Op(">=").Len(jen.Id("kindNames"))).Block(
			jen.Return(jen.Lit("invalid")),
		),
		jen.Return(jen.Id("kindNames").Index(jen.Id("k"))),
	)

	f.Comment("DataType describes the type of an entity property.")
	f.Type().Id("DataType").Struct(
		jen.Id("Kind").Id("Kind"),
		jen.Id("Nullable").Bool(),
		jen.Id("Key").Bool(),
	)
	f.Comment("Field describes one property of an entity type.")
	f.Type().Id("Field").Struct(
		jen.Id("Name").String(),
		jen.Id("Type").Id("DataType"),
	)
	f.Comment("Relation describes one navigation property of an entity type.")
	f.Type().Id("Relation").Struct(
		jen.Id("Name").String(),
		jen.Id("Target").String(),
	)
	f.Comment("Model describes an entity type at run time.")
	f.Type().Id("Model").InterfaceFunc(func(group *jen.Group) {
		group.Id("Name").Params().String()
		group.Id("Fields").Params().Index().Id("Field")
		if f.config.Expand() {
			group.Id("Relations").Params().Index().Id("Relation")
		}
	})
}
