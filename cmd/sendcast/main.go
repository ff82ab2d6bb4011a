package main

import (
	"os"

	"github.com/sendcast/sendcast-cli/internal/cli"
	"github.com/sendcast/sendcast-cli/internal/cmdutil"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cmdutil.CodeFor(err))
	}
}
