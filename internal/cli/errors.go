package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/syssam/odatagen/compiler/gen"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	hintLabel  = color.New(color.FgYellow)
)

// PrintError writes one diagnostic line per aggregated error to w.
func PrintError(w io.Writer, err error) {
	errs := gen.Flatten(err)
	for _, e := range errs {
		errorLabel.Fprint(w, "error:")
		fmt.Fprintf(w, " %v\n", e)
	}
	if n := len(gen.ResolutionErrors(err)); n > 0 {
		hintLabel.Fprintf(w, "%d navigation propert%s could not be resolved; run with --no-expand to skip navigation fields\n", n, plural(n, "y", "ies"))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
