// Package main is the entry point for the doccmp CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/doccmp/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
