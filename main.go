package main

import (
	"os"

	"github.com/optimeet/optimeet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
