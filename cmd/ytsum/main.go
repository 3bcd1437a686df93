package main

import (
	"os"

	"github.com/nurmister/ytsum/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
