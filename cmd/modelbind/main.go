// Package main provides the modelbind CLI.
//
// modelbind works with the bind declarations of model types:
//   - inspect lists what a binder would bind for a model type
//   - export collects bind tags into a declarations file
//   - check validates a declarations file against model types
//   - demo binds a sample account to a terminal form
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

const usage = `Usage:
  modelbind inspect [-dir d] <package> <Type>
  modelbind export [-dir d] [-o file] <package>...
  modelbind check [-dir d] <file> <package>...
  modelbind demo [-decl file] [-log file]`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "inspect":
		return runInspect(rest, stdout, stderr)
	case "export":
		return runExport(rest, stdout, stderr)
	case "check":
		return runCheck(rest, stdout, stderr)
	case "demo":
		return runDemo(rest, stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}
