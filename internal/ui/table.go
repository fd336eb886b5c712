package ui

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/brogergvhs/errgen/internal/rustdoc"
)

// PrintEntryTable lists surviving entries in discovery order, which is also
// the order they are generated in.
func PrintEntryTable(entries []rustdoc.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "PACKAGE", "NAME", "QUALIFIED"})
	for i, e := range entries {
		t.AppendRow(table.Row{i + 1, e.Package, e.Name, e.QualifiedName()})
	}

	t.Render()
}
