package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"model-binder/internal/inspect"
	"model-binder/widget"
)

func runInspect(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("inspect", stderr)
	dir := fs.String("dir", "", "Directory package patterns are resolved in")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("%w: inspect takes a package and a type", errUsage)
	}

	pkg, typeName := fs.Arg(0), fs.Arg(1)

	analyzer := inspect.NewAnalyzer()
	analyzer.Dir = *dir

	graph, err := analyzer.LoadPackages(pkg)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}

	entries, err := graph.Walk(inspect.TypeID{PkgPath: pkg, Name: typeName})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTYPE\tTARGETS\tROOT\tACCESSORS")

	for _, e := range entries {
		targets := "-"
		if !e.Ignored {
			targets = joinIDs(e.Targets)
		}

		root := e.Root
		if root == "" {
			root = "."
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Path, e.Type, targets, root, accessors(e))
	}

	return w.Flush()
}

func joinIDs(ids []widget.ViewID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}

	return strings.Join(parts, ",")
}

func accessors(e inspect.Entry) string {
	getter, setter := e.Getter, e.Setter
	if getter == "" {
		getter = "."
	}
	if setter == "" {
		setter = "."
	}

	return getter + "/" + setter
}
