package main

import (
	"fmt"
	"os"

	"github.com/devpopsdotin/kge/internal/cli"
	"github.com/devpopsdotin/kge/internal/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not initialize logging:", err)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
