package main

import (
	"os"

	"github.com/minhtran/lingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
