package gen

import (
	"fmt"
	"slices"
	"strings"
)

// NodeID addresses a node in the tree arena.
type NodeID int

// RootID is the id of the root node.
const RootID NodeID = 0

// Decl is a top-level declaration of a generated package.
type Decl interface {
	// DeclIdent returns the Go identifier introduced by the declaration.
	DeclIdent() string
	decl()
}

// EntityTypesDecl lists the descriptors of all entities of a package.
type EntityTypesDecl struct {
	// Descriptors holds the descriptor identifiers in declaration order.
	Descriptors []string
}

// EntityTypesIdent is the identifier of the per-package descriptor listing.
const EntityTypesIdent = "EntityTypes"

// AliasKind is the kind of an alias declaration.
type AliasKind int

const (
	// AliasType declares a type alias.
	AliasType AliasKind = iota + 1
	// AliasFunc declares a variable holding a function of another package.
	AliasFunc
)

// AliasDecl re-declares a type or function under another identifier.
type AliasDecl struct {
	Ident  string
	Kind   AliasKind
	Target GoType
}

func (d *EntityDecl) DeclIdent() string      { return d.Ident }
func (d *DescriptorDecl) DeclIdent() string  { return d.Ident }
func (d *EntityTypesDecl) DeclIdent() string { return EntityTypesIdent }
func (d *AliasDecl) DeclIdent() string       { return d.Ident }

func (*EntityDecl) decl()      {}
func (*DescriptorDecl) decl()  {}
func (*EntityTypesDecl) decl() {}
func (*AliasDecl) decl()       {}

// Node is one package of the generated tree.
type Node struct {
	ID NodeID
	// Segment is the package name.
	Segment string
	// Path is the slash separated path of the package relative to the
	// root. Empty for the root.
	Path string
	// Parent is the id of the parent node, or -1 for the root.
	Parent   NodeID
	Children []NodeID
	Decls    []Decl
	// Imports holds the nodes referenced by the declarations of the node,
	// in the order they were first referenced.
	Imports []NodeID

	idents map[string]Decl
}

// Decl returns the declaration with the given identifier.
func (n *Node) Decl(ident string) (Decl, bool) {
	d, ok := n.idents[ident]
	return d, ok
}

// Entities returns the entity declarations of the node in order.
func (n *Node) Entities() []*EntityDecl {
	var es []*EntityDecl
	for _, d := range n.Decls {
		if e, ok := d.(*EntityDecl); ok {
			es = append(es, e)
		}
	}
	return es
}

// name returns the path of the node, or the package name for the root.
func (n *Node) name() string {
	if n.Path == "" {
		return n.Segment
	}
	return n.Path
}

func (n *Node) add(d Decl) error {
	ident := d.DeclIdent()
	if _, ok := n.idents[ident]; ok {
		return NewSchemaError(n.name(), ident, fmt.Sprintf("identifier %s declared more than once", ident), nil)
	}
	n.idents[ident] = d
	n.Decls = append(n.Decls, d)
	return nil
}

// Tree is the arena of generated packages. Node 0 is the root package.
type Tree struct {
	nodes  []*Node
	byPath map[string]NodeID
}

// NewTree returns a tree holding only the root package.
func NewTree(pkg string) *Tree {
	t := &Tree{byPath: make(map[string]NodeID)}
	t.newNode(pkg, "", -1)
	return t
}

func (t *Tree) newNode(segment, path string, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &Node{
		ID:      id,
		Segment: segment,
		Path:    path,
		Parent:  parent,
		idents:  make(map[string]Decl),
	})
	t.byPath[path] = id
	if parent >= 0 {
		p := t.nodes[parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.nodes[RootID] }

// Node returns the node with the given id.
func (t *Tree) Node(id NodeID) *Node { return t.nodes[id] }

// Nodes returns all nodes in creation order.
func (t *Tree) Nodes() []*Node { return t.nodes }

// Ensure locates or creates the chain of nodes for the given segments and
// returns the id of the last one. No segments means the root.
func (t *Tree) Ensure(segments []string) NodeID {
	id := RootID
	for i := range segments {
		path := strings.Join(segments[:i+1], "/")
		next, ok := t.byPath[path]
		if !ok {
			next = t.newNode(segments[i], path, id)
		}
		id = next
	}
	return id
}

// Import records that node from imports node to. It fails without
// recording the import when to already reaches from, as Go packages must
// not import each other.
func (t *Tree) Import(from, to NodeID) error {
	if from == to {
		return nil
	}
	n := t.nodes[from]
	if slices.Contains(n.Imports, to) {
		return nil
	}
	if chain := t.importChain(to, from, make(map[NodeID]bool)); chain != nil {
		names := []string{n.name()}
		for _, id := range chain {
			names = append(names, t.nodes[id].name())
		}
		return fmt.Errorf("import cycle not allowed: %s", strings.Join(names, " -> "))
	}
	n.Imports = append(n.Imports, to)
	return nil
}

// importChain returns the nodes on the first import chain from node from
// to node to, both included, or nil if to is not reachable.
func (t *Tree) importChain(from, to NodeID, seen map[NodeID]bool) []NodeID {
	if from == to {
		return []NodeID{to}
	}
	if seen[from] {
		return nil
	}
	seen[from] = true
	for _, next := range t.nodes[from].Imports {
		if chain := t.importChain(next, to, seen); chain != nil {
			return append([]NodeID{from}, chain...)
		}
	}
	return nil
}

// Lookup returns the node with the given path.
func (t *Tree) Lookup(path string) (*Node, bool) {
	id, ok := t.byPath[path]
	if !ok {
		return nil, false
	}
	return t.nodes[id], true
}

// Walk calls fn for every node in depth-first order, parents before
// children.
func (t *Tree) Walk(fn func(*Node) error) error {
	var walk func(NodeID) error
	walk = func(id NodeID) error {
		n := t.nodes[id]
		if err := fn(n); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(RootID)
}
