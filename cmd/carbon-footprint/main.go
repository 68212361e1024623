package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}
