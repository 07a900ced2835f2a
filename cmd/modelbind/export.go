package main

import (
	"fmt"
	"io"

	"model-binder/declare"
	"model-binder/internal/inspect"
)

func runExport(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("export", stderr)
	dir := fs.String("dir", "", "Directory package patterns are resolved in")
	out := fs.String("o", "", "Output file (default stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return fmt.Errorf("%w: export takes at least one package", errUsage)
	}

	analyzer := inspect.NewAnalyzer()
	analyzer.Dir = *dir

	graph, err := analyzer.LoadPackages(fs.Args()...)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	f := graph.Export()

	if *out != "" {
		if err := declare.WriteFile(f, *out); err != nil {
			return err
		}

		fmt.Fprintf(stdout, "wrote %d models to %s\n", len(f.Models), *out)

		return nil
	}

	data, err := declare.Marshal(f)
	if err != nil {
		return err
	}

	_, err = stdout.Write(data)

	return err
}
