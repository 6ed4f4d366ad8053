package gen

import (
	"errors"
	"go/token"
	"log/slog"
	"slices"
	"strings"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithPackage sets the root package name.
// For example: "northwind".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if !token.IsIdentifier(pkg) {
			return NewConfigError("Package", pkg, "package must be a valid Go identifier")
		}
		c.Package = pkg
		return nil
	}
}

// WithImportPath sets the import path of the root package.
// For example: "github.com/org/project/northwind".
func WithImportPath(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("ImportPath", nil, "import path cannot be empty")
		}
		if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") || strings.ContainsAny(path, " \\") {
			return NewConfigError("ImportPath", path, "malformed import path")
		}
		c.ImportPath = path
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if _, ok := FeatureByName(f.Name); !ok {
				return NewConfigError("Features", f.Name, "unknown feature")
			}
			if !c.enabled(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithoutFeatures disables specific features.
func WithoutFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if _, ok := FeatureByName(f.Name); !ok {
				return NewConfigError("Features", f.Name, "unknown feature")
			}
			c.Features = slices.DeleteFunc(c.Features, func(e Feature) bool {
				return e.Name == f.Name
			})
		}
		return nil
	}
}

// WithLogger sets the logger used for progress logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config in order and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) Apply(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the default package and features,
// and the given options applied.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Package:  DefaultPackage,
		Features: DefaultFeatures(),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
