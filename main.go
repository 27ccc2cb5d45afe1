package main

import (
	"fmt"
	"os"

	"github.com/schollz/seedwords/src/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
