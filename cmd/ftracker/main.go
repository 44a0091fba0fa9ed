package main

import (
	"flag"
	"fmt"
	"os"

	"ftracker/internal/cli"
)

func main() {
	fs := flag.NewFlagSet("ftracker", flag.ExitOnError)
	cfg, err := cli.ParseConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitError)
	}

	os.Exit(cli.Run(cfg, os.Stdout, os.Stderr))
}
