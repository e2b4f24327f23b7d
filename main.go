package main

import (
	"os"

	"github.com/asmit/mentis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
