// Package config loads the odatagen configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/syssam/odatagen/compiler/gen"
)

// File is the YAML configuration file. Every setting mirrors a command-line
// flag; flags given on the command line win.
//
//	package: northwind
//	import_path: github.com/org/app/northwind
//	output_dir: ./northwind
//	features:
//	  serde/emptystringisnull: false
type File struct {
	Input      string          `yaml:"input,omitempty"`
	Package    string          `yaml:"package,omitempty"`
	ImportPath string          `yaml:"import_path,omitempty"`
	OutputFile string          `yaml:"output_file,omitempty"`
	OutputDir  string          `yaml:"output_dir,omitempty"`
	Header     string          `yaml:"header,omitempty"`
	Features   map[string]bool `yaml:"features,omitempty"`
}

// Load reads the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a configuration file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if f.OutputFile != "" && f.OutputDir != "" {
		return nil, errors.New("output_file and output_dir are mutually exclusive")
	}
	return &f, nil
}

// Options returns the generation options of the file. Features are applied
// in name order.
func (f *File) Options() ([]gen.Option, error) {
	var opts []gen.Option
	if f.Package != "" {
		opts = append(opts, gen.WithPackage(f.Package))
	}
	if f.ImportPath != "" {
		opts = append(opts, gen.WithImportPath(f.ImportPath))
	}
	if f.Header != "" {
		opts = append(opts, gen.WithHeader(f.Header))
	}
	names := make([]string, 0, len(f.Features))
	for name := range f.Features {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		feature, ok := gen.FeatureByName(name)
		if !ok {
			return nil, gen.NewConfigError("features", name, "unknown feature")
		}
		if f.Features[name] {
			opts = append(opts, gen.WithFeatures(feature))
		} else {
			opts = append(opts, gen.WithoutFeatures(feature))
		}
	}
	return opts, nil
}
