package main

import (
	"os"

	"github.com/bughound-labs/bughound/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
