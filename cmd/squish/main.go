// Command squish compresses and decompresses files with bounded memory.
package main

import (
	"os"

	"github.com/user538295/squish/cmd/squish/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
