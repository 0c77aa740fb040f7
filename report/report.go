// Package report renders search results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdrpinto/gridastar"
)

// NotFound is printed by the plain format when the goal is unreachable.
const NotFound = "no path found"

// Format selects how Write renders a result.
type Format string

const (
	Plain Format = "plain" // one "(x, y)" line per step
	Table Format = "table" // go-pretty table with a cost footer
	JSON  Format = "json"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(name)); format {
	case Plain, Table, JSON:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be 'plain', 'table' or 'json'", name)
	}
}

// Write renders result to w.
func Write(w io.Writer, format Format, result gridastar.Result) error {
	switch format {
	case Plain:
		return writePlain(w, result)
	case Table:
		return writeTable(w, result)
	case JSON:
		return writeJSON(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writePlain(w io.Writer, result gridastar.Result) error {
	if !result.Found {
		_, err := fmt.Fprintln(w, NotFound)
		return err
	}
	for _, cell := range result.Path {
		if _, err := fmt.Fprintln(w, cell); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, result gridastar.Result) error {
	if !result.Found {
		_, err := fmt.Fprintln(w, NotFound)
		return err
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Step", "X", "Y"})
	for i, cell := range result.Path {
		t.AppendRow(table.Row{i + 1, cell.X, cell.Y})
	}
	t.AppendFooter(table.Row{"Cost", result.Cost, ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

type jsonResult struct {
	Found    bool     `json:"found"`
	Cost     int      `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path"`
}

func writeJSON(w io.Writer, result gridastar.Result) error {
	out := jsonResult{
		Found:    result.Found,
		Cost:     result.Cost,
		Expanded: result.Expanded,
		Path:     make([][2]int, 0, len(result.Path)),
	}
	for _, cell := range result.Path {
		out.Path = append(out.Path, [2]int{cell.X, cell.Y})
	}
	return json.NewEncoder(w).Encode(out)
}
