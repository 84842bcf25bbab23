package main

import (
	"fmt"
	"os"

	"github.com/blockfall/blockfall/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands set SilenceErrors, so report once here with the
		// error's own exit code.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
