package gen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/syssam/odatagen/compiler/load"
)

// Result is the declaration tree built from an EDMX document.
type Result struct {
	// Tree holds one node per generated package.
	Tree *Tree
	// Config used to build the tree.
	Config *Config
	// NonASCII reports if any generated identifier contains non-ASCII
	// characters.
	NonASCII bool
}

// NeedsShared reports if the generated packages reference the shared
// package.
func (r *Result) NeedsShared() bool {
	for _, n := range r.Tree.Nodes() {
		for _, d := range n.Decls {
			switch d := d.(type) {
			case *DescriptorDecl:
				return true
			case *EntityDecl:
				if r.Config.Serde() && d.HasEmptyAsNil() {
					return true
				}
			}
		}
	}
	return false
}

// Generate builds the declaration tree of the given document. Errors of all
// schemas are collected and returned together; no tree is returned when
// any schema failed.
func Generate(ctx context.Context, doc *load.Edmx, opts ...Option) (*Result, error) {
	c, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	b := &builder{
		config: c,
		log:    c.logger(),
		tree:   NewTree(c.Package),
		models: make(map[NodeID][]string),
	}
	for _, s := range doc.Schemas {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.schema(s)
	}
	b.entityTypes()
	for _, s := range doc.Schemas {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.entitySets(s)
	}
	if s := doc.DefaultSchema(); s != nil {
		b.reexport(s)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	res := &Result{Tree: b.tree, Config: c}
	if res.NeedsShared() {
		if n, ok := b.tree.Lookup(SharedPackage); ok {
			return nil, NewSchemaError(n.Path, "", "namespace segment collides with the shared package "+SharedPackage, nil)
		}
	}
	res.NonASCII = nonASCII(b.tree)
	b.log.Debug("declaration tree built", slog.Int("packages", len(b.tree.Nodes())), slog.Bool("non_ascii", res.NonASCII))
	return res, nil
}

// builder builds the declaration tree in one forward pass.
type builder struct {
	config *Config
	log    *slog.Logger
	tree   *Tree
	// models holds the descriptor identifiers of each node in order.
	models map[NodeID][]string
	errs   []error
}

func (b *builder) add(id NodeID, d Decl) {
	if err := b.tree.Node(id).add(d); err != nil {
		b.errs = append(b.errs, err)
	}
}

func (b *builder) schema(s *load.Schema) {
	id := b.tree.Ensure(NamespacePath(s.Namespace))
	b.log.Debug("generate schema", slog.String("namespace", s.Namespace), slog.Int("entities", len(s.EntityTypes)))
	for _, e := range s.EntityTypes {
		decl, desc, errs := synthesizeEntity(s, e, b.config)
		for _, err := range errs {
			b.errs = append(b.errs, err)
		}
		if err := checkFields(s, decl); err != nil {
			b.errs = append(b.errs, err)
		}
		b.add(id, decl)
		if desc != nil {
			b.add(id, desc)
			b.models[id] = append(b.models[id], desc.Ident)
		}
		b.log.Debug("generate entity", slog.String("entity", s.Namespace+"."+e.Name), slog.Int("fields", len(decl.Fields)))
	}
}

// checkFields reports fields of one struct that share an identifier.
func checkFields(s *load.Schema, e *EntityDecl) error {
	seen := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if prev, ok := seen[f.Ident]; ok {
			return NewSchemaError(s.Namespace, e.Name, fmt.Sprintf("properties %s and %s map to the same field %s", prev, f.Name, f.Ident), nil)
		}
		seen[f.Ident] = f.Name
	}
	return nil
}

// entityTypes adds the descriptor listing to every node with descriptors.
func (b *builder) entityTypes() {
	for _, n := range b.tree.Nodes() {
		if models := b.models[n.ID]; len(models) > 0 {
			b.add(n.ID, &EntityTypesDecl{Descriptors: models})
		}
	}
}

// entitySets adds one alias per entity set of the schema, named after the
// set and pointing to the set's entity type.
func (b *builder) entitySets(s *load.Schema) {
	sets := s.EntitySets()
	if len(sets) == 0 {
		return
	}
	id := b.tree.Ensure(NamespacePath(s.Namespace))
	node := b.tree.Node(id)
	for _, set := range sets {
		i := strings.LastIndexByte(set.EntityType, '.')
		if i <= 0 {
			b.errs = append(b.errs, NewSchemaError(s.Namespace, set.Name, "entity type "+set.EntityType+" is not qualified", nil))
			continue
		}
		path := strings.Join(NamespacePath(set.EntityType[:i]), "/")
		target, ok := b.tree.Lookup(path)
		if !ok {
			b.errs = append(b.errs, NewSchemaError(s.Namespace, set.Name, "namespace of entity type "+set.EntityType+" is not declared", nil))
			continue
		}
		ident := Ident(set.EntityType[i+1:])
		if d, ok := target.Decl(ident); !ok || !isEntity(d) {
			b.errs = append(b.errs, NewSchemaError(s.Namespace, set.Name, "entity type "+set.EntityType+" is not declared", nil))
			continue
		}
		alias := &AliasDecl{Ident: Ident(set.Name), Kind: AliasType}
		if target.ID == node.ID {
			if alias.Ident == ident {
				continue
			}
			alias.Target = Named(ident)
		} else {
			if err := b.tree.Import(id, target.ID); err != nil {
				b.errs = append(b.errs, NewSchemaError(s.Namespace, set.Name, fmt.Sprintf("package %s imports %s", node.name(), target.name()), err))
				continue
			}
			alias.Target = Qualified(b.config.ImportPathOf(target.Path), ident)
		}
		b.add(id, alias)
	}
}

func isEntity(d Decl) bool {
	_, ok := d.(*EntityDecl)
	return ok
}

// reexport declares every declaration of the default schema's package at
// the root package.
func (b *builder) reexport(s *load.Schema) {
	src, ok := b.tree.Lookup(strings.Join(NamespacePath(s.Namespace), "/"))
	if !ok || src.ID == RootID {
		return
	}
	if err := b.tree.Import(RootID, src.ID); err != nil {
		b.errs = append(b.errs, NewSchemaError(s.Namespace, "", fmt.Sprintf("package %s imports %s", b.tree.Root().name(), src.name()), err))
		return
	}
	pkg := b.config.ImportPathOf(src.Path)
	b.log.Debug("re-export default schema", slog.String("namespace", s.Namespace), slog.Int("decls", len(src.Decls)))
	for _, d := range src.Decls {
		alias := &AliasDecl{
			Ident:  d.DeclIdent(),
			Kind:   AliasType,
			Target: Qualified(pkg, d.DeclIdent()),
		}
		if _, ok := d.(*EntityTypesDecl); ok {
			alias.Kind = AliasFunc
		}
		b.add(RootID, alias)
	}
}

// nonASCII reports if any package, declaration or field identifier of the
// tree contains non-ASCII characters.
func nonASCII(t *Tree) bool {
	for _, n := range t.Nodes() {
		if !isASCII(n.Segment) {
			return true
		}
		for _, d := range n.Decls {
			if !isASCII(d.DeclIdent()) {
				return true
			}
			if e, ok := d.(*EntityDecl); ok {
				for _, f := range e.Fields {
					if !isASCII(f.Ident) {
						return true
					}
				}
			}
		}
	}
	return false
}
