package main

import (
	"os"

	"github.com/voyager-mc/voyager/cmd/voyager/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
