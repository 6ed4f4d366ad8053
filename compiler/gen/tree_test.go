package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Ensure(t *testing.T) {
	tree := NewTree("odata")
	root := tree.Root()
	assert.Equal(t, RootID, root.ID)
	assert.Equal(t, "odata", root.Segment)
	assert.Equal(t, NodeID(-1), root.Parent)

	leaf := tree.Ensure([]string{"odataweb", "northwind", "model"})
	n := tree.Node(leaf)
	assert.Equal(t, "model", n.Segment)
	assert.Equal(t, "odataweb/northwind/model", n.Path)
	assert.Len(t, tree.Nodes(), 4)

	t.Run("shared prefix reuses nodes", func(t *testing.T) {
		other := tree.Ensure([]string{"odataweb", "northwind", "other"})
		assert.NotEqual(t, leaf, other)
		assert.Len(t, tree.Nodes(), 5)

		parent, ok := tree.Lookup("odataweb/northwind")
		require.True(t, ok)
		assert.Equal(t, []NodeID{leaf, other}, parent.Children)
		assert.Equal(t, parent.ID, tree.Node(other).Parent)
	})

	t.Run("existing path", func(t *testing.T) {
		assert.Equal(t, leaf, tree.Ensure([]string{"odataweb", "northwind", "model"}))
		assert.Len(t, tree.Nodes(), 5)
	})

	t.Run("no segments is root", func(t *testing.T) {
		assert.Equal(t, RootID, tree.Ensure(nil))
	})
}

func TestTree_Lookup(t *testing.T) {
	tree := NewTree("odata")
	tree.Ensure([]string{"test"})

	n, ok := tree.Lookup("test")
	require.True(t, ok)
	assert.Equal(t, "test", n.Segment)

	root, ok := tree.Lookup("")
	require.True(t, ok)
	assert.Equal(t, RootID, root.ID)

	_, ok = tree.Lookup("missing")
	assert.False(t, ok)
}

func TestTree_Walk(t *testing.T) {
	tree := NewTree("odata")
	tree.Ensure([]string{"b", "c"})
	tree.Ensure([]string{"a"})
	tree.Ensure([]string{"b", "d"})

	var paths []string
	require.NoError(t, tree.Walk(func(n *Node) error {
		paths = append(paths, n.Path)
		return nil
	}))
	assert.Equal(t, []string{"", "b", "b/c", "b/d", "a"}, paths)
}

func TestNode_Add(t *testing.T) {
	tree := NewTree("odata")
	n := tree.Node(tree.Ensure([]string{"test"}))

	require.NoError(t, n.add(&EntityDecl{Name: "Person", Ident: "Person"}))
	require.NoError(t, n.add(&DescriptorDecl{Ident: "PersonModel"}))
	require.NoError(t, n.add(&EntityTypesDecl{Descriptors: []string{"PersonModel"}}))

	err := n.add(&AliasDecl{Ident: "PersonModel", Kind: AliasType, Target: Named("Person")})
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
	assert.Contains(t, err.Error(), "PersonModel declared more than once")

	d, ok := n.Decl("Person")
	require.True(t, ok)
	assert.IsType(t, &EntityDecl{}, d)
	assert.Len(t, n.Decls, 3)
	assert.Len(t, n.Entities(), 1)
	assert.Equal(t, EntityTypesIdent, n.Decls[2].DeclIdent())
}

func TestTree_Import(t *testing.T) {
	tree := NewTree("odata")
	a := tree.Ensure([]string{"a"})
	b := tree.Ensure([]string{"b"})
	c := tree.Ensure([]string{"c"})

	require.NoError(t, tree.Import(a, b))
	require.NoError(t, tree.Import(a, b))
	require.NoError(t, tree.Import(b, c))
	require.NoError(t, tree.Import(a, a))
	require.NoError(t, tree.Import(RootID, a))
	assert.Equal(t, []NodeID{b}, tree.Node(a).Imports)

	err := tree.Import(c, a)
	require.Error(t, err)
	assert.Equal(t, "import cycle not allowed: c -> a -> b -> c", err.Error())
	assert.Empty(t, tree.Node(c).Imports)

	err = tree.Import(a, RootID)
	require.Error(t, err)
	assert.Equal(t, "import cycle not allowed: a -> odata -> a", err.Error())
}
