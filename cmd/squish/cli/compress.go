package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/user538295/squish"
)

var compressCmd = &cobra.Command{
	Use:     "compress <input>",
	Aliases: []string{"c"},
	Short:   "Compress a file or standard input",
	GroupID: "core",
	Long: `Compress reads the input, compresses it with the chosen algorithm, and
writes the result.

Without -o the output goes next to the input with the algorithm name
appended as a suffix (a.txt -> a.txt.lz4). With "-" as the input, data is
read from standard input; the output then defaults to standard output when
it is part of a pipeline.

Examples:
  squish compress a.txt -m lz4              # writes a.txt.lz4
  squish compress a.txt -m lzma -o a.z      # explicit destination
  cat a.txt | squish compress - -m zlib > a.txt.zlib`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

var (
	compressMethod string
	compressOutput string
	compressForce  bool
)

func init() {
	compressCmd.Flags().StringVarP(&compressMethod, "method", "m", "", "Compression algorithm (lz4, lzfse, zlib, lzma)")
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "", "Destination path, or - for standard output")
	compressCmd.Flags().BoolVarP(&compressForce, "force", "f", false, "Overwrite an existing destination file")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(_ *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	input, explicit := endpointsFromArgs(args[0], compressOutput)

	method := compressMethod
	if method == "" {
		method = cfg.Method
	}

	plan, err := client.Resolve(input, method, explicit, squish.Compress)
	if err != nil {
		return err
	}
	if err := refuseOverwrite(plan.Sink, compressForce); err != nil {
		return err
	}

	backend, err := client.Backend(plan.Algorithm)
	if err != nil {
		return err
	}
	counts, err := client.Run(input, plan.Sink, backend, squish.Compress)
	if err != nil {
		return err
	}

	if isVerbose() {
		printSummary("compressed", input.String(), plan.Sink.String(), counts)
	}
	return nil
}

// printSummary reports byte counts to stderr so pipelines on stdout stay
// clean.
func printSummary(verb, src, dst string, counts squish.Counts) {
	ratio := 0.0
	if counts.BytesIn > 0 {
		ratio = float64(counts.BytesOut) / float64(counts.BytesIn)
	}
	fmt.Fprintf(os.Stderr, "%s %s -> %s (%s in, %s out, ratio %.2f)\n",
		verb, src, dst,
		humanize.IBytes(uint64(counts.BytesIn)),  //nolint:gosec // G115: byte counts are non-negative
		humanize.IBytes(uint64(counts.BytesOut)), //nolint:gosec // G115: byte counts are non-negative
		ratio,
	)
}
