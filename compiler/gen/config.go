package gen

import (
	"io"
	"log/slog"
	"slices"
	"strings"
)

const (
	// DefaultPackage is the name of the root package when none is configured.
	DefaultPackage = "odata"

	// SharedPackage is the name of the package holding the reflection
	// contract and decoding helpers used by all generated packages.
	SharedPackage = "opendata"
)

// Provenance is the header comment of every generated file.
var Provenance = []string{
	"Code generated by odatagen from OData metadata. DO NOT EDIT.",
	"Any changes made to this file may be overwritten by future code generation runs!",
}

// Config holds the configuration for code generation.
type Config struct {
	// Package is the name of the root package.
	Package string

	// ImportPath is the import path of the root package. Generated packages
	// reference each other and the shared package through it. Defaults to
	// Package.
	ImportPath string

	// Header allows users to provide an optional header signature for
	// the generated files. It is added after the provenance header.
	Header string

	// Features defines a list of enabled features.
	Features []Feature

	// Logger receives progress logs. Logging is discarded when nil.
	Logger *slog.Logger
}

// FeatureEnabled reports if the given feature name is enabled.
// It returns a ConfigError for unknown feature names.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := FeatureByName(name); !ok {
		return false, NewConfigError("Features", name, "unknown feature")
	}
	return c.enabled(name), nil
}

func (c *Config) enabled(name string) bool {
	return slices.ContainsFunc(c.Features, func(f Feature) bool {
		return f.Name == name
	})
}

// Serde reports if serialization hints are generated.
func (c *Config) Serde() bool { return c.enabled(FeatureSerde.Name) }

// EmptyStringIsNull reports if optional text fields decode "" as nil.
func (c *Config) EmptyStringIsNull() bool {
	return c.Serde() && c.enabled(FeatureEmptyStringIsNull.Name)
}

// Reflection reports if model descriptors are generated.
func (c *Config) Reflection() bool { return c.enabled(FeatureReflection.Name) }

// Expand reports if navigation properties are generated.
func (c *Config) Expand() bool { return c.enabled(FeatureExpand.Name) }

// RootImportPath returns the import path of the root package.
func (c *Config) RootImportPath() string {
	if c.ImportPath != "" {
		return c.ImportPath
	}
	return c.Package
}

// SharedImportPath returns the import path of the shared package.
func (c *Config) SharedImportPath() string {
	return c.RootImportPath() + "/" + SharedPackage
}

// ImportPathOf returns the import path of the package at the given tree path.
func (c *Config) ImportPathOf(path string) string {
	if path == "" {
		return c.RootImportPath()
	}
	return c.RootImportPath() + "/" + path
}

// HeaderLines returns the header comment lines of generated files, without
// comment markers.
func (c *Config) HeaderLines() []string {
	lines := slices.Clone(Provenance)
	if h := strings.TrimSpace(c.Header); h != "" {
		for _, l := range strings.Split(h, "\n") {
			lines = append(lines, strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "//")))
		}
	}
	return lines
}

// HeaderComment returns the header as Go line comments.
func (c *Config) HeaderComment() string {
	var b strings.Builder
	for _, l := range c.HeaderLines() {
		b.WriteString("// ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
