package main

import (
	"os"

	"github.com/mscheme-lang/go-mscheme/cmd/mscheme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
