// Package golang renders the declaration tree built by the gen package into
// Go source files using jennifer.
package golang

import (
	"go/token"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/odatagen/compiler/gen"
)

// Emit returns one output file per package of the tree holding
// declarations, plus the shared package when it is referenced.
func Emit(res *gen.Result) []gen.OutputFile {
	g := &generator{res: res, config: res.Config}
	var files []gen.OutputFile
	_ = res.Tree.Walk(func(n *gen.Node) error {
		if len(n.Decls) == 0 {
			return nil
		}
		files = append(files, gen.OutputFile{
			Path:   g.filePath(n),
			Source: g.genNode(n),
		})
		return nil
	})
	if res.NeedsShared() {
		files = append(files, gen.OutputFile{
			Path:   gen.SharedPackage + "/" + gen.SharedPackage + ".go",
			Source: g.genShared(),
		})
	}
	return files
}

// generator holds the state shared by all files of one emission.
type generator struct {
	res    *gen.Result
	config *gen.Config
}

// filePath returns the output path of the node's file. The root package is
// written to <package>.go, other packages to <path>/<segment>.go.
func (g *generator) filePath(n *gen.Node) string {
	if n.ID == gen.RootID {
		return g.config.Package + ".go"
	}
	return n.Path + "/" + n.Segment + ".go"
}

// file wraps a jennifer file with the import naming of generated packages.
type file struct {
	*jen.File
	config *gen.Config
	names  map[string]string
}

// newFile creates a new jennifer file with the header comment.
func (g *generator) newFile(importPath, name string) *file {
	f := jen.NewFilePathName(importPath, name)
	for _, l := range g.config.HeaderLines() {
		f.HeaderComment(l)
	}
	return &file{File: f, config: g.config, names: map[string]string{name: importPath}}
}

// qual returns a qualified reference. Generated packages are imported under
// their package name when it is free in the file.
func (f *file) qual(pkgPath, name string) *jen.Statement {
	if strings.HasPrefix(pkgPath, f.config.RootImportPath()+"/") {
		alias := path.Base(pkgPath)
		if p, ok := f.names[alias]; (!ok || p == pkgPath) && !token.IsKeyword(alias) {
			f.names[alias] = pkgPath
			f.ImportName(pkgPath, alias)
		}
	}
	return jen.Qual(pkgPath, name)
}

// goType returns the jennifer code of a Go type.
func (f *file) goType(t gen.GoType) jen.Code {
	switch {
	case t.IsPointer():
		return jen.Op("*").Add(f.goType(*t.Elem))
	case t.IsSlice():
		return jen.Index().Add(f.goType(*t.Elem))
	case t.PkgPath != "":
		return f.qual(t.PkgPath, t.Name)
	default:
		return jen.Id(t.Name)
	}
}

func (f *file) shared(name string) *jen.Statement {
	return f.qual(f.config.SharedImportPath(), name)
}

// genNode renders all declarations of one package in order.
func (g *generator) genNode(n *gen.Node) *jen.File {
	f := g.newFile(g.config.ImportPathOf(n.Path), n.Segment)
	for _, d := range n.Decls {
		switch d := d.(type) {
		case *gen.EntityDecl:
			f.genEntity(d)
		case *gen.DescriptorDecl:
			f.genDescriptor(d)
		case *gen.EntityTypesDecl:
			f.genEntityTypes(d)
		case *gen.AliasDecl:
			f.genAlias(d)
		}
	}
	return f.File
}
