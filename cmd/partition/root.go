package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dixieflatline76/partition/config"
	"github.com/dixieflatline76/partition/pkg/partition"
	"github.com/dixieflatline76/partition/util"
	"github.com/dixieflatline76/partition/util/log"
	"github.com/spf13/cobra"
)

// updateHTTPClient is used for the release lookup. nil means http.DefaultClient.
var updateHTTPClient *http.Client

type rootFlags struct {
	verbose     bool
	autoOrient  bool
	checkUpdate bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "partition FILE_OR_DIR [HORIZONTAL] [VERTICAL]",
		Short: "Pad images to paper ratio and draw drawing-practice guide lines",
		Long: `Pads an image with white space to the ISO paper ratio (square root of 2) and
overlays evenly spaced guide lines. HORIZONTAL is the number of columns (default 4),
VERTICAL the number of rows (default HORIZONTAL).

A file is written next to the original as processed_<name>. A directory is processed
entry by entry into a sibling directory named processed_<dirname>.`,
		Version:       config.AppVersion,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug output")
	cmd.Flags().BoolVar(&flags.autoOrient, "auto-orient", false, "Apply EXIF orientation when reading images")
	cmd.Flags().BoolVar(&flags.checkUpdate, "check-update", false, "Check GitHub for a newer release")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", config.ErrUsage, err)
	})

	return cmd
}

func run(ctx context.Context, out io.Writer, args []string, flags rootFlags) error {
	log.SetDebug(flags.verbose)

	if flags.checkUpdate {
		reportUpdate(ctx, out)
		if len(args) == 0 {
			return nil
		}
	}

	opts, err := config.ParseArgs(args)
	if err != nil {
		printUsageError(out, args, err)
		return nil
	}
	opts.AutoOrient = flags.autoOrient
	opts.Verbose = flags.verbose
	log.Debugf("Running with %+v", *opts)

	p := partition.NewPartitioner(partition.NewFileCodec(opts.AutoOrient), out)
	result, err := p.Run(ctx, opts.Path, opts.Horizontal, opts.Vertical)
	if err != nil {
		return err
	}
	log.Debugf("%d processed, %d skipped", len(result.Processed), len(result.Skipped))
	return nil
}

func printUsageError(out io.Writer, args []string, err error) {
	switch {
	case len(args) == 0:
	case errors.Is(err, config.ErrTooManyArgs):
		fmt.Fprintln(out, "Too many arguments.")
	default:
		fmt.Fprintln(out, err)
	}
	fmt.Fprintln(out, config.UsageLine)
}

func reportUpdate(ctx context.Context, out io.Writer) {
	result, err := util.CheckForUpdates(ctx, updateHTTPClient)
	if err != nil {
		log.Printf("Update check failed: %v", err)
		fmt.Fprintf(out, "Could not check for updates: %v\n", err)
		return
	}
	if result.UpdateAvailable {
		fmt.Fprintf(out, "A new version is available: %s (you have %s). %s\n", result.LatestVersion, result.CurrentVersion, result.ReleaseURL)
		return
	}
	fmt.Fprintf(out, "%s %s is up to date.\n", config.AppName, result.CurrentVersion)
}
