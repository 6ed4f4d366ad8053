// Package cli implements the odatagen command line.
package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/odatagen/compiler/gen"
	"github.com/syssam/odatagen/internal/version"
)

// featureHelp lists the generation features that can be switched off with
// the --no-* flags or the features section of the config file.
func featureHelp() string {
	var b strings.Builder
	b.WriteString("Features (all enabled by default):\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, f := range gen.AllFeatures {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, f.Stage, f.Description)
	}
	w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// NewRootCmd returns the odatagen command.
func NewRootCmd() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:     "odatagen [flags] <metadata.xml>",
		Short:   "Generate Go types from OData metadata",
		Version: version.String(),
		Long: `odatagen reads an OData CSDL document (EDMX metadata, OData v1-v3) and
generates Go declarations: one package per namespace segment, one struct per
entity type, JSON decoding hints, navigation fields and run-time descriptors.

Examples:
  odatagen metadata.xml                          # Print all packages to stdout
  odatagen -o odata.txtar metadata.xml           # Write one archive file
  odatagen --output-dir ./odata metadata.xml     # Write the package tree
  odatagen --no-expand --no-serde metadata.xml   # Plain structs only
  odatagen --config odatagen.yaml --watch        # Regenerate on every change

` + featureHelp(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				o.input = args[0]
			}
			return run(cmd, &o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.outputFile, "output-file", "o", "", "write all generated packages to one txtar file")
	flags.StringVar(&o.outputDir, "output-dir", "", "write the generated package tree under the directory")
	flags.BoolVar(&o.noSerde, "no-serde", false, "do not generate JSON tags and decoding methods")
	flags.BoolVar(&o.noEmptyStringIsNull, "no-empty-string-is-null", false, "do not decode empty strings of optional text fields as nil")
	flags.BoolVar(&o.noReflection, "no-reflection", false, "do not generate model descriptors")
	flags.BoolVar(&o.noExpand, "no-expand", false, "do not generate navigation fields")
	flags.StringVar(&o.pkg, "package", "", "name of the root package (default \"odata\")")
	flags.StringVar(&o.importPath, "import-path", "", "import path of the root package (default: the package name)")
	flags.StringVar(&o.configFile, "config", "", "YAML configuration file")
	flags.BoolVar(&o.watch, "watch", false, "regenerate after every change of the input file")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("output-file", "output-dir")

	return cmd
}
