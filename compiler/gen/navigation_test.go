package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/odatagen/compiler/load"
)

func TestResolveNavigation(t *testing.T) {
	s := orderSchema()
	customer, _ := s.EntityType("Customer")
	order, _ := s.EntityType("Order")

	t.Run("many end", func(t *testing.T) {
		target, err := ResolveNavigation(s, customer, customer.NavigationProperties[0])
		require.NoError(t, err)
		assert.Equal(t, Target{Entity: "Order", Multiplicity: "*"}, target)
		assert.Equal(t, ShapeCollection, target.Shape())
	})

	t.Run("optional end", func(t *testing.T) {
		target, err := ResolveNavigation(s, order, order.NavigationProperties[0])
		require.NoError(t, err)
		assert.Equal(t, Target{Entity: "Customer", Multiplicity: "0..1"}, target)
		assert.Equal(t, ShapeOptional, target.Shape())
	})
}

func TestTarget_Shape(t *testing.T) {
	assert.Equal(t, ShapeOptional, Target{Multiplicity: load.MultiplicityZeroOrOne}.Shape())
	assert.Equal(t, ShapeCollection, Target{Multiplicity: load.MultiplicityOne}.Shape())
	assert.Equal(t, ShapeCollection, Target{Multiplicity: load.MultiplicityMany}.Shape())
}

func TestResolveNavigation_FirstMatch(t *testing.T) {
	s := orderSchema()
	s.Associations = append([]*load.Association{{
		Name: "Earlier",
		Ends: []*load.End{
			{Role: "Orders"},
			{Role: "Orders", EntityType: "Shop.Order", Multiplicity: load.MultiplicityOne},
		},
	}}, s.Associations...)
	customer, _ := s.EntityType("Customer")

	target, err := ResolveNavigation(s, customer, customer.NavigationProperties[0])
	require.NoError(t, err)
	assert.Equal(t, "1", target.Multiplicity, "ends without an entity type are skipped")
}

func TestResolveNavigation_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*load.Schema)
		reason string
	}{
		{
			name: "no matching role",
			modify: func(s *load.Schema) {
				s.Associations[0].Ends[1].Role = "Other"
			},
			reason: "no association end matches the role",
		},
		{
			name: "no associations",
			modify: func(s *load.Schema) {
				s.Associations = nil
			},
			reason: "no association end matches the role",
		},
		{
			name: "foreign namespace",
			modify: func(s *load.Schema) {
				s.Associations[0].Ends[1].EntityType = "Other.Order"
			},
			reason: "outside the schema namespace",
		},
		{
			name: "missing multiplicity",
			modify: func(s *load.Schema) {
				s.Associations[0].Ends[1].Multiplicity = ""
			},
			reason: "has no multiplicity",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := orderSchema()
			tt.modify(s)
			customer, _ := s.EntityType("Customer")

			_, err := ResolveNavigation(s, customer, customer.NavigationProperties[0])
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnresolvedNavigation))

			var resErr *ResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, "Shop", resErr.Schema)
			assert.Equal(t, "Customer", resErr.Entity)
			assert.Equal(t, "Orders", resErr.Navigation)
			assert.Equal(t, "Orders", resErr.Role)
			assert.Contains(t, resErr.Reason, tt.reason)
		})
	}
}

func TestResolveNavigation_ForeignNamespaceIsAuthoritative(t *testing.T) {
	s := orderSchema()
	s.Associations = append(s.Associations, &load.Association{
		Name: "Later",
		Ends: []*load.End{{Role: "Orders", EntityType: "Shop.Order", Multiplicity: load.MultiplicityMany}},
	})
	s.Associations[0].Ends[1].EntityType = "Other.Order"
	customer, _ := s.EntityType("Customer")

	_, err := ResolveNavigation(s, customer, customer.NavigationProperties[0])
	assert.True(t, IsResolutionError(err))
}
