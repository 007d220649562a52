// Package cli implements the squish command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/felixge/fgprof"
	"github.com/spf13/cobra"

	"github.com/user538295/squish"
	"github.com/user538295/squish/cmd/squish/cli/config"
)

// Build information set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	verbose    bool
	cpuProfile string
)

// cfg holds the loaded configuration, populated before any command runs.
var cfg config.Config

// stopProfile is non-nil while a CPU profile is being collected.
var stopProfile func() error

var rootCmd = &cobra.Command{
	Use:   "squish",
	Short: "Compress and decompress files",
	Long: `Squish is a streaming file compression tool.

It supports four algorithms (lz4, lzfse, zlib, lzma) and processes input in
fixed-size chunks, so memory use stays constant no matter how large the
file is. Use "-" as the input or output to read from standard input or
write to standard output.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if stopProfile != nil {
			return stopProfile()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpu-profile", "", "Write a CPU profile to the given file")
	if err := rootCmd.PersistentFlags().MarkHidden("cpu-profile"); err != nil {
		panic(err)
	}
	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	rootCmd.Version = version
}

func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile) //nolint:gosec // G304: profile path is a CLI argument
		if err != nil {
			return fmt.Errorf("create profile file: %w", err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		stopProfile = func() error {
			if err := stop(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
	}
	return err
}

// newClient creates a squish client with configured options.
func newClient() (*squish.Client, error) {
	var opts []squish.Option
	if cfg.ChunkSize > 0 {
		opts = append(opts, squish.WithChunkSize(cfg.ChunkSize))
	}
	if cfg.MaxRatio > 0 {
		opts = append(opts, squish.WithGuard(squish.RatioGuard{
			MaxRatio:  cfg.MaxRatio,
			MinOutput: 1 << 20,
		}))
	}
	if isVerbose() {
		opts = append(opts, squish.WithLogger(
			slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
		))
	}
	return squish.New(opts...)
}

func isVerbose() bool {
	return verbose || cfg.Verbose
}

// endpointsFromArgs maps the positional input and the --output flag to
// endpoints; "-" selects the standard streams.
func endpointsFromArgs(input, output string) (squish.SourceEndpoint, *squish.SinkEndpoint) {
	var src squish.SourceEndpoint
	if input == "-" {
		src = squish.StdinSource()
	} else {
		src = squish.FileSource(input)
	}

	var dst *squish.SinkEndpoint
	switch output {
	case "":
	case "-":
		sink := squish.StdoutSink()
		dst = &sink
	default:
		sink := squish.FileSink(output)
		dst = &sink
	}
	return src, dst
}

// refuseOverwrite rejects an existing destination file unless --force was
// given. Default decompression naming already avoids collisions; this
// protects explicit destinations and compression defaults.
func refuseOverwrite(sink squish.SinkEndpoint, force bool) error {
	if force {
		return nil
	}
	path, ok := sink.File()
	if !ok {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("output file %s already exists (use --force to overwrite)", path)
	}
	return nil
}

// formatError converts squish errors to user-friendly messages.
func formatError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, squish.ErrAlgorithmRequired):
		return fmt.Sprintf("Error: %v (pass -m to choose one)", err)
	case errors.Is(err, squish.ErrAmbiguousOutput):
		return fmt.Sprintf("Error: %v (pass -o to choose a destination)", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
