package load

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	edmx, err := File(filepath.Join("testdata", "northwind.xml"))
	require.NoError(t, err)

	assert.Equal(t, "1.0", edmx.Version)
	require.Len(t, edmx.Schemas, 2)

	model := edmx.Schemas[0]
	assert.Equal(t, "NorthwindModel", model.Namespace)
	require.Len(t, model.EntityTypes, 2)
	require.Len(t, model.Associations, 1)
	assert.Nil(t, model.EntitySets())

	t.Run("entity types", func(t *testing.T) {
		category := model.EntityTypes[0]
		assert.Equal(t, "Category", category.Name)
		assert.Equal(t, "CategoryID", category.Key)
		require.Len(t, category.Properties, 4)
		assert.Equal(t, &Property{Name: "CategoryID", Type: Int32}, category.Properties[0])
		assert.Equal(t, &Property{Name: "CategoryName", Type: String}, category.Properties[1])
		assert.Equal(t, &Property{Name: "Description", Type: String, Nullable: true}, category.Properties[2])
		assert.Equal(t, &Property{Name: "Picture", Type: Binary, Nullable: true}, category.Properties[3])
		assert.Same(t, category.Properties[0], category.KeyProperty())

		require.Len(t, category.NavigationProperties, 1)
		assert.Equal(t, &NavigationProperty{
			Name:         "Products",
			Relationship: "NorthwindModel.FK_Products_Categories",
			FromRole:     "Categories",
			ToRole:       "Products",
		}, category.NavigationProperties[0])
	})

	t.Run("associations", func(t *testing.T) {
		a := model.Associations[0]
		assert.Equal(t, "FK_Products_Categories", a.Name)
		assert.Equal(t, []*End{
			{Role: "Categories", EntityType: "NorthwindModel.Category", Multiplicity: MultiplicityZeroOrOne},
			{Role: "Products", EntityType: "NorthwindModel.Product", Multiplicity: MultiplicityMany},
		}, a.Ends)
	})

	t.Run("container", func(t *testing.T) {
		container := edmx.Schemas[1]
		assert.Same(t, container, edmx.DefaultSchema())
		assert.Equal(t, []*EntitySet{
			{Name: "Categories", EntityType: "NorthwindModel.Category"},
			{Name: "Products", EntityType: "NorthwindModel.Product"},
		}, container.EntitySets())
	})
}

func TestFile_ReadError(t *testing.T) {
	_, err := File(filepath.Join("testdata", "missing.xml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, IsParseError(err))
	assert.Contains(t, err.Error(), "missing.xml")
}

func TestFile_ParseErrors(t *testing.T) {
	tests := []struct {
		file    string
		message string
	}{
		{"unsupported_type.xml", `property "Id" has unsupported type "Edm.Guid"`},
		{"bad_key.xml", `key "PersonId" does not name a property`},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := File(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.True(t, IsParseError(err))
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.Contains(t, err.Error(), "schema Test")
			assert.Contains(t, err.Error(), "EntityType Person")
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("malformed xml", func(t *testing.T) {
		_, err := Parse(strings.NewReader("<edmx:Edmx"))
		require.Error(t, err)
		assert.True(t, IsParseError(err))
	})

	t.Run("missing namespace", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<Edmx><DataServices><Schema/></DataServices></Edmx>`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing Namespace attribute")
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<Edmx><DataServices><Schema Namespace="Test">
			<EntityType Name="Person"><Property Name="Id" Type="Edm.Int32"/></EntityType>
		</Schema></DataServices></Edmx>`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing key")
	})

	t.Run("invalid multiplicity", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<Edmx><DataServices><Schema Namespace="Test">
			<Association Name="A"><End Role="R" Type="Test.Person" Multiplicity="2"/></Association>
		</Schema></DataServices></Edmx>`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid multiplicity "2" on end "R"`)
	})

	t.Run("composite key designates first property", func(t *testing.T) {
		edmx, err := Parse(strings.NewReader(`<Edmx><DataServices><Schema Namespace="Test">
			<EntityType Name="Line">
				<Key><PropertyRef Name="OrderID"/><PropertyRef Name="ProductID"/></Key>
				<Property Name="OrderID" Type="Edm.Int32" Nullable="false"/>
				<Property Name="ProductID" Type="Edm.Int32" Nullable="false"/>
			</EntityType>
		</Schema></DataServices></Edmx>`))
		require.NoError(t, err)
		assert.Equal(t, "OrderID", edmx.Schemas[0].EntityTypes[0].Key)
	})

	t.Run("no default container", func(t *testing.T) {
		edmx, err := Parse(strings.NewReader(`<Edmx><DataServices><Schema Namespace="Test">
			<EntityContainer Name="C"><EntitySet Name="People" EntityType="Test.Person"/></EntityContainer>
		</Schema></DataServices></Edmx>`))
		require.NoError(t, err)
		assert.Nil(t, edmx.DefaultSchema())
		assert.Len(t, edmx.Schemas[0].EntitySets(), 1)
	})
}

func TestKind(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			assert.True(t, k.Valid())
			parsed, ok := ParseKind("Edm." + k.String())
			require.True(t, ok)
			assert.Equal(t, k, parsed)
		})
	}

	_, ok := ParseKind("Edm.Int64")
	assert.False(t, ok)
	assert.False(t, Kind(0).Valid())
	assert.Equal(t, "invalid", Kind(0).String())
}
