package main

import (
	"os"

	"github.com/jpqlkit/jpqlrewrite/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
