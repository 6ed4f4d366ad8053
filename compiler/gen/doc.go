// Package gen builds Go declarations from OData CSDL metadata.
//
// The package turns a document loaded by the load package into a tree of
// declarations, one node per generated Go package. The tree is rendered by
// the golang package and written by a Writer.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	EDMX document (metadata.xml)
//	        ↓
//	   load.Edmx (immutable schema graph)
//	        ↓
//	   Generate: Tree of Decl (one node per namespace segment)
//	        ↓
//	   golang.Emit: one jennifer file per package
//	        ↓
//	   Writer: directory, txtar file or stdout
//
// # Key Types
//
//   - Tree, Node: the arena of generated packages, addressed by NodeID or path
//   - EntityDecl, FieldDecl: the struct of one entity type
//   - DescriptorDecl: the run-time model descriptor of one entity type
//   - EntityTypesDecl: the descriptor listing of a package
//   - AliasDecl: entity set aliases and re-exports of the default schema
//   - Config, Option, Feature: generation settings
//
// # Type Mapping
//
// Primitive EDM types map to Go types as follows; nullable properties map
// to pointers of the same types.
//
//	Edm.Binary          []byte
//	Edm.Boolean         bool
//	Edm.Byte            uint8
//	Edm.DateTime        time.Time
//	Edm.DateTimeOffset  time.Duration
//	Edm.Decimal         float64
//	Edm.Double          float64
//	Edm.Int16           int16
//	Edm.Int32           int32
//	Edm.String          string
//
// Navigation properties whose target end has multiplicity "0..1" map to *T,
// all others to []T.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: declarations that cannot be built from the document
//   - ResolutionError: navigation properties without a usable association end
//   - ConfigError: configuration errors
//   - GenerationError: rendering and write errors
//
// Errors of one Generate call are collected and returned with errors.Join.
// Use ResolutionErrors to list the unresolved navigation properties:
//
//	res, err := gen.Generate(ctx, doc)
//	for _, e := range gen.ResolutionErrors(err) {
//		log.Printf("%s.%s: %s", e.Entity, e.Navigation, e.Reason)
//	}
//
// # Features
//
// All features are enabled by default and can be disabled with
// WithoutFeatures:
//
//   - FeatureSerde: JSON struct tags and UnmarshalJSON methods
//   - FeatureEmptyStringIsNull: decode "" as nil for optional text fields
//   - FeatureReflection: model descriptors and EntityTypes listings
//   - FeatureExpand: navigation fields and relation descriptors
package gen
