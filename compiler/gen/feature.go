package gen

var (
	// FeatureSerde provides a feature-flag for serialization hints: JSON
	// struct tags and generated UnmarshalJSON methods.
	FeatureSerde = Feature{
		Name:        "serde",
		Stage:       Stable,
		Default:     true,
		Description: "Serde adds JSON struct tags and decoding helpers to the generated entities",
	}

	// FeatureEmptyStringIsNull decodes an empty string into nil for optional
	// text fields. It has no effect without FeatureSerde.
	FeatureEmptyStringIsNull = Feature{
		Name:        "serde/emptystringisnull",
		Stage:       Stable,
		Default:     true,
		Description: "Decodes empty strings of optional text fields as absent values",
	}

	// FeatureReflection provides a feature-flag for the run-time descriptors
	// of the generated entities.
	FeatureReflection = Feature{
		Name:        "reflection",
		Stage:       Stable,
		Default:     true,
		Description: "Reflection generates a model descriptor per entity and an EntityTypes listing per package",
	}

	// FeatureExpand provides a feature-flag for navigation fields and relation
	// descriptors.
	FeatureExpand = Feature{
		Name:        "expand",
		Stage:       Stable,
		Default:     true,
		Description: "Expand adds navigation properties as fields and relations to the generated entities",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureSerde,
		FeatureEmptyStringIsNull,
		FeatureReflection,
		FeatureExpand,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are complete, but their output may still change.
	Alpha

	// Beta features are documented, and no breaking-changes are expected.
	Beta

	// Stable features are Beta features that were used for a while.
	Stable
)

var stageNames = [...]string{
	Experimental: "experimental",
	Alpha:        "alpha",
	Beta:         "beta",
	Stable:       "stable",
}

// String returns the lower-case name of the stage.
func (s FeatureStage) String() string {
	if s >= Experimental && s <= Stable {
		return stageNames[s]
	}
	return "unknown"
}

// A Feature of the odatagen codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// DefaultFeatures returns the features enabled by default.
func DefaultFeatures() []Feature {
	var fs []Feature
	for _, f := range AllFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}

// FeatureByName returns the feature registered with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
