package main

import (
	"fmt"
	"os"

	"github.com/trackdeck/trackdeck/internal/launcher"
)

func main() {
	if err := launcher.Launch(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
