package cli

import (
	"github.com/spf13/cobra"

	"github.com/user538295/squish"
)

var decompressCmd = &cobra.Command{
	Use:     "decompress <input>",
	Aliases: []string{"x", "d"},
	Short:   "Decompress a file or standard input",
	GroupID: "core",
	Long: `Decompress reads compressed input and writes the original bytes back.

The algorithm is inferred from the input file's suffix when possible
(a.txt.lz4 implies lz4); otherwise pass -m. Without -o the suffix is
stripped to form the destination (a.txt.lz4 -> a.txt); if that name is
already taken, .out is appended instead of overwriting.

Examples:
  squish decompress a.txt.lz4               # writes a.txt
  squish decompress archive.bin -m lzma     # suffix gives no hint
  cat a.txt.zlib | squish decompress - -m zlib > a.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runDecompress,
}

var (
	decompressMethod string
	decompressOutput string
	decompressForce  bool
)

func init() {
	decompressCmd.Flags().StringVarP(&decompressMethod, "method", "m", "", "Compression algorithm, inferred from the suffix when omitted")
	decompressCmd.Flags().StringVarP(&decompressOutput, "output", "o", "", "Destination path, or - for standard output")
	decompressCmd.Flags().BoolVarP(&decompressForce, "force", "f", false, "Overwrite an existing destination file")
	rootCmd.AddCommand(decompressCmd)
}

func runDecompress(_ *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	input, explicit := endpointsFromArgs(args[0], decompressOutput)

	plan, err := client.Resolve(input, decompressMethod, explicit, squish.Decompress)
	if err != nil {
		return err
	}
	if err := refuseOverwrite(plan.Sink, decompressForce); err != nil {
		return err
	}

	backend, err := client.Backend(plan.Algorithm)
	if err != nil {
		return err
	}
	counts, err := client.Run(input, plan.Sink, backend, squish.Decompress)
	if err != nil {
		return err
	}

	if isVerbose() {
		printSummary("decompressed", input.String(), plan.Sink.String(), counts)
	}
	return nil
}
