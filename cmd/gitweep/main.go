package main

import (
	"os"

	"github.com/gitweep/gitweep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
