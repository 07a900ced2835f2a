package main

import (
	"errors"
	"fmt"
	"io"

	"model-binder/declare"
	"model-binder/internal/inspect"
)

var errInvalid = errors.New("declarations are invalid")

func runCheck(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("check", stderr)
	dir := fs.String("dir", "", "Directory package patterns are resolved in")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("%w: check takes a file and at least one package", errUsage)
	}

	f, err := declare.LoadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	analyzer := inspect.NewAnalyzer()
	analyzer.Dir = *dir

	graph, err := analyzer.LoadPackages(fs.Args()[1:]...)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	res := declare.Validate(f, graph)

	for _, d := range res.Warnings {
		fmt.Fprintf(stdout, "warning: %s\n", d)
	}

	for _, d := range res.Errors {
		fmt.Fprintf(stdout, "error: %s\n", d)
	}

	if !res.IsValid() {
		return fmt.Errorf("%w: %d errors", errInvalid, len(res.Errors))
	}

	fmt.Fprintf(stdout, "%s: %d models ok\n", fs.Arg(0), len(f.Models))

	return nil
}
