// Command licensit prints and writes open source license texts.
package main

import (
	"os"

	"github.com/licensit/licensit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
