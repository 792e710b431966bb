package main

import (
	"os"

	"github.com/printworks/rainbowpress/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
