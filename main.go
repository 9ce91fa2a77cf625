package main

import (
	"os"

	"github.com/atreya/mindplay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
