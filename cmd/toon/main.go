package main

import (
	"fmt"
	"os"

	"github.com/toonfmt/go-toon/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "toon:", err)
		os.Exit(1)
	}
}
