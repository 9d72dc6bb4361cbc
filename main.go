package main

import (
	"os"

	"hexdump/cli"
)

func main() {
	os.Exit(cli.Start())
}
