package main

import (
	"os"

	"github.com/sqlkit/sqlformat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
