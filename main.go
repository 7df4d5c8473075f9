package main

import (
	"os"

	"github.com/coursetrail/coursetrail/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
