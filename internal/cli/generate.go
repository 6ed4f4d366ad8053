package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/syssam/odatagen/compiler/gen"
	"github.com/syssam/odatagen/compiler/gen/golang"
	"github.com/syssam/odatagen/compiler/load"
	"github.com/syssam/odatagen/internal/config"
)

// options holds the command-line flags.
type options struct {
	input               string
	outputFile          string
	outputDir           string
	noSerde             bool
	noEmptyStringIsNull bool
	noReflection        bool
	noExpand            bool
	pkg                 string
	importPath          string
	configFile          string
	watch               bool
	verbose             bool

	// genOpts is the resolved generation configuration.
	genOpts []gen.Option
}

func run(cmd *cobra.Command, o *options) error {
	logger := newLogger(cmd.ErrOrStderr(), o.verbose)
	if err := o.resolve(cmd); err != nil {
		return err
	}
	ctx := cmd.Context()
	err := generate(ctx, cmd.OutOrStdout(), o, logger)
	if !o.watch {
		return err
	}
	if err != nil {
		logger.Error("generation failed", slog.Any("error", err))
	}
	return watch(ctx, o.input, logger, func() error {
		return generate(ctx, cmd.OutOrStdout(), o, logger)
	})
}

// resolve merges the configuration file with the flags. Flags set on the
// command line win over the file.
func (o *options) resolve(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if o.configFile != "" {
		f, err := config.Load(o.configFile)
		if err != nil {
			return err
		}
		if o.input == "" {
			o.input = f.Input
		}
		if !flags.Changed("output-file") && !flags.Changed("output-dir") {
			o.outputFile, o.outputDir = f.OutputFile, f.OutputDir
		}
		opts, err := f.Options()
		if err != nil {
			return err
		}
		o.genOpts = append(o.genOpts, opts...)
	}
	if o.input == "" {
		return errors.New("missing input: pass the metadata file as argument or set input in the config file")
	}
	if flags.Changed("package") {
		o.genOpts = append(o.genOpts, gen.WithPackage(o.pkg))
	}
	if flags.Changed("import-path") {
		o.genOpts = append(o.genOpts, gen.WithImportPath(o.importPath))
	}
	for _, d := range []struct {
		off     bool
		feature gen.Feature
	}{
		{o.noSerde, gen.FeatureSerde},
		{o.noEmptyStringIsNull, gen.FeatureEmptyStringIsNull},
		{o.noReflection, gen.FeatureReflection},
		{o.noExpand, gen.FeatureExpand},
	} {
		if d.off {
			o.genOpts = append(o.genOpts, gen.WithoutFeatures(d.feature))
		}
	}
	return nil
}

// generate runs the whole pipeline once: load, build, emit and write.
func generate(ctx context.Context, stdout io.Writer, o *options, logger *slog.Logger) error {
	start := time.Now()
	doc, err := load.File(o.input)
	if err != nil {
		return err
	}
	res, err := gen.Generate(ctx, doc, append(o.genOpts, gen.WithLogger(logger))...)
	if err != nil {
		return err
	}
	if res.NonASCII {
		logger.Warn("generated identifiers contain non-ASCII characters")
	}
	w := gen.NewWriter()
	files, err := w.Render(ctx, golang.Emit(res))
	if err != nil {
		return err
	}
	switch {
	case o.outputDir != "":
		err = w.WriteDir(ctx, o.outputDir, files)
	case o.outputFile != "":
		err = w.WriteFile(o.outputFile, res.Config.HeaderComment(), files)
	default:
		err = w.WriteBundle(stdout, res.Config.HeaderComment(), files)
	}
	if err != nil {
		return err
	}
	m := w.Metrics()
	logger.Info("code generated",
		slog.String("input", o.input),
		slog.String("output", o.destination()),
		slog.Int("files", m.FilesRendered),
		slog.Int64("bytes", m.TotalBytes),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

// newLogger returns a text logger writing to w, at debug level when
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// destination describes where the output of o is written.
func (o *options) destination() string {
	switch {
	case o.outputDir != "":
		return fmt.Sprintf("directory %s", o.outputDir)
	case o.outputFile != "":
		return fmt.Sprintf("file %s", o.outputFile)
	default:
		return "stdout"
	}
}
