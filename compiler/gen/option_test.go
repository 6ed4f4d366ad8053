package gen

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("// Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "// Custom header", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithPackage(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		wantErr bool
	}{
		{"simple", "northwind", false},
		{"underscore", "north_wind", false},
		{"empty", "", true},
		{"dash", "north-wind", true},
		{"path", "example.com/odata", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithPackage(tt.pkg)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pkg, c.Package)
		})
	}
}

func TestWithImportPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"module path", "github.com/org/project/odata", false},
		{"single element", "odata", false},
		{"empty", "", true},
		{"absolute", "/odata", true},
		{"trailing slash", "odata/", true},
		{"space", "my odata", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithImportPath(tt.path)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.path, c.ImportPath)
		})
	}
}

func TestWithFeatures(t *testing.T) {
	t.Run("adds features once", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithFeatures(FeatureSerde, FeatureSerde, FeatureExpand)(c))
		assert.Equal(t, []Feature{FeatureSerde, FeatureExpand}, c.Features)
	})

	t.Run("unknown feature", func(t *testing.T) {
		c := &Config{}
		err := WithFeatures(Feature{Name: "unknown"})(c)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithoutFeatures(t *testing.T) {
	t.Run("removes features", func(t *testing.T) {
		c := &Config{Features: DefaultFeatures()}
		require.NoError(t, WithoutFeatures(FeatureSerde, FeatureExpand)(c))
		assert.Equal(t, []Feature{FeatureEmptyStringIsNull, FeatureReflection}, c.Features)
	})

	t.Run("missing feature is a no-op", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithoutFeatures(FeatureSerde)(c))
		assert.Empty(t, c.Features)
	})

	t.Run("unknown feature", func(t *testing.T) {
		c := &Config{}
		err := WithoutFeatures(Feature{Name: "unknown"})(c)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithLogger(t *testing.T) {
	t.Run("sets logger", func(t *testing.T) {
		l := slog.New(slog.NewTextHandler(io.Discard, nil))
		c := &Config{}
		require.NoError(t, WithLogger(l)(c))
		assert.Same(t, l, c.Logger)
	})

	t.Run("nil logger returns error", func(t *testing.T) {
		err := WithLogger(nil)(&Config{})
		assert.True(t, IsConfigError(err))
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithPackage("first"), WithPackage("second"))
		require.NoError(t, err)
		assert.Equal(t, "second", c.Package)
	})

	t.Run("collects all errors", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithPackage(""), WithImportPath(""), WithHeader("h"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "ImportPath")
		assert.Equal(t, "h", c.Header)
		assert.Len(t, Flatten(err), 2)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultPackage, c.Package)
		assert.Equal(t, AllFeatures, c.Features)
	})

	t.Run("error", func(t *testing.T) {
		c, err := NewConfig(WithPackage(""), WithFeatures(Feature{Name: "privacy"}))
		require.Error(t, err)
		assert.Nil(t, c)
		assert.Len(t, Flatten(err), 2)
		assert.True(t, IsConfigError(err))
	})

	t.Run("must panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithPackage("")) })
	})
}
