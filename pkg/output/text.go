package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text, one line per
// parsed file followed by the summary.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if !f.opts.Quiet {
		for _, file := range report.Files {
			fmt.Fprintf(w, "%s: %d\n", file.Path, file.Seconds)
		}
		if f.opts.Verbose {
			for _, skip := range report.Skipped {
				fmt.Fprintf(w, "skipped %s: %s\n", skip.Path, skip.Reason)
			}
		}
	}

	fmt.Fprintf(w, "%d files parsed\n", report.Summary.FilesParsed)
	h, m, s := report.Summary.Clock()
	fmt.Fprintf(w, "total time: %d = %dh %dmin %ds\n", report.Summary.TotalSeconds, h, m, s)
	return nil
}
