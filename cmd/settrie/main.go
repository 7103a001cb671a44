package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/settrie/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("settrie"),
		kong.Description("Query records keyed by sets for subsets and supersets of a query set."),
		kong.UsageOnError(),
	)

	runCtx, err := cli.NewContext(cli.CLI.LogLevel, os.Stdout, os.Stderr)
	if err == nil {
		err = ctx.Run(runCtx)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
