package main

import (
	"os"

	"github.com/matuskalis/speaksharp-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
