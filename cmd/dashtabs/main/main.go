package main

import (
	"os"

	"github.com/arthur-debert/dashtabs/cmd/dashtabs"
)

func main() {
	os.Exit(dashtabs.Execute())
}
