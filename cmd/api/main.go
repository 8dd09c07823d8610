package main

import (
	"os"

	"github.com/zizouhuweidi/trivia/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
