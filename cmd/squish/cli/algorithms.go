package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user538295/squish"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List supported compression algorithms",
	Run: func(_ *cobra.Command, _ []string) {
		for _, name := range squish.DefaultRegistry().SupportedNames() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
