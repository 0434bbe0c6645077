package main

import (
	"os"

	"github.com/thenoetrevino/myday/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
