package main

import (
	"os"

	"github.com/rustyeddy/pricer/cmd/pricer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
