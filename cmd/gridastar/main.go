// gridastar prints the path from a grid's start cell to its goal cell.
//
// Usage:
//
//	gridastar [flags] FILE...
//	gridastar solve [--format plain|table|json] [--heuristic source|manhattan] [--workers N] FILE...
//	gridastar trace [--format plain|table|json] [--heuristic source|manhattan] FILE
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/pdrpinto/gridastar/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
