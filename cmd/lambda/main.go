package main

import (
	"os"

	"github.com/alextanhongpin/lambda/cmd/lambda/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
