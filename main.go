package main

import (
	"os"

	"github.com/glintclean/weekplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
