package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/happyarno/mc-playtime/pkg/config"
	"github.com/happyarno/mc-playtime/pkg/output"
	"github.com/happyarno/mc-playtime/pkg/scan"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ScanOptions holds command-line options for the scan command.
type ScanOptions struct {
	Output     string
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [<log file>] [<logs dir>] [<.minecraft dir>] ...",
		Short: "Scan log files and sum session durations",
		Long: `Scan each path and sum the playtime its logs record.

A path may be a single log file, a logs directory (rotated *.log.gz
files plus latest.log), or a .minecraft installation directory, in
which case its logs directory and every version's logs directory are
scanned. Paths that fail are reported and skipped; the rest still
count.

Examples:
  mc-playtime scan .
  mc-playtime scan ./.minecraft
  mc-playtime scan ./.minecraft/logs
  mc-playtime scan ./.minecraft/logs/latest.log
  mc-playtime scan ./version1/logs ./version2/logs`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to YAML config file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show skipped files, not just parsed ones")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no per-file lines")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, opts *ScanOptions) error {
	// No paths given: print usage and succeed, contributing nothing.
	if len(args) == 0 {
		return cmd.Help()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	formatter, err := createFormatter(cfg, opts)
	if err != nil {
		return err
	}

	scanner := scan.NewScanner(scan.Layout{
		InstallDirName:  cfg.Layout.InstallDirName,
		LogsDirName:     cfg.Layout.LogsDirName,
		VersionsDirName: cfg.Layout.VersionsDirName,
		CurrentLogName:  cfg.Layout.CurrentLogName,
	})

	// Each path is resolved independently; a failing path is reported
	// and excluded while the remaining paths still contribute.
	report := output.NewReport()
	stderr := cmd.ErrOrStderr()
	for _, path := range args {
		res, err := scanner.ScanPath(path)
		if err != nil {
			switch {
			case errors.Is(err, scan.ErrNoFilesParsed):
				fmt.Fprintf(stderr, "WARNING: %v\n", err)
				report.AddFailure(path, output.KindWarning, scan.ErrNoFilesParsed.Error())
			case errors.Is(err, scan.ErrNoTimestamp):
				fmt.Fprintf(stderr, "ERROR: %s: Not a minecraft log file\n", path)
				report.AddFailure(path, output.KindError, "not a minecraft log file")
			default:
				fmt.Fprintf(stderr, "ERROR: %v\n", err)
				report.AddFailure(path, output.KindError, err.Error())
			}
			continue
		}
		report.AddResult(res)
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func createFormatter(cfg *config.Config, opts *ScanOptions) (output.Formatter, error) {
	format := cfg.Output.Format
	if opts.Output != "" {
		format = opts.Output
	}

	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
