package main

import (
	"os"

	"github.com/wayfindr/studio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
