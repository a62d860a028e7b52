package main

import (
	"os"

	"github.com/eslsoft/coursecatalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
