package gen

import (
	"github.com/syssam/odatagen/compiler/load"
)

// personSchema returns the schema Test with one entity Person(Id Int32 key,
// Name String nullable).
func personSchema() *load.Schema {
	return &load.Schema{
		Namespace: "Test",
		EntityTypes: []*load.EntityType{
			{
				Name: "Person",
				Key:  "Id",
				Properties: []*load.Property{
					{Name: "Id", Type: load.Int32},
					{Name: "Name", Type: load.String, Nullable: true},
				},
			},
		},
	}
}

// orderSchema returns the schema Shop with Customer and Order entities
// linked by the association Customer_Orders.
func orderSchema() *load.Schema {
	return &load.Schema{
		Namespace: "Shop",
		EntityTypes: []*load.EntityType{
			{
				Name: "Customer",
				Key:  "CustomerID",
				Properties: []*load.Property{
					{Name: "CustomerID", Type: load.Int32},
					{Name: "CompanyName", Type: load.String},
				},
				NavigationProperties: []*load.NavigationProperty{
					{Name: "Orders", Relationship: "Shop.Customer_Orders", FromRole: "Customer", ToRole: "Orders"},
				},
			},
			{
				Name: "Order",
				Key:  "OrderID",
				Properties: []*load.Property{
					{Name: "OrderID", Type: load.Int32},
					{Name: "OrderDate", Type: load.DateTime, Nullable: true},
				},
				NavigationProperties: []*load.NavigationProperty{
					{Name: "Customer", Relationship: "Shop.Customer_Orders", FromRole: "Orders", ToRole: "Customer"},
				},
			},
		},
		Associations: []*load.Association{
			{
				Name: "Customer_Orders",
				Ends: []*load.End{
					{Role: "Customer", EntityType: "Shop.Customer", Multiplicity: load.MultiplicityZeroOrOne},
					{Role: "Orders", EntityType: "Shop.Order", Multiplicity: load.MultiplicityMany},
				},
			},
		},
		Containers: []*load.Container{
			{
				Name:    "ShopEntities",
				Default: true,
				EntitySets: []*load.EntitySet{
					{Name: "Customers", EntityType: "Shop.Customer"},
					{Name: "Orders", EntityType: "Shop.Order"},
				},
			},
		},
	}
}

func document(schemas ...*load.Schema) *load.Edmx {
	return &load.Edmx{Version: "1.0", Schemas: schemas}
}
