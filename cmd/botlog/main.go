package main

import (
	"os"

	"github.com/willibrandon/botlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
