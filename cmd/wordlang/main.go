package main

import (
	"os"

	"github.com/msto63/wordlang/cmd/wordlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
