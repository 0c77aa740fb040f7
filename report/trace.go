package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pdrpinto/gridastar"
)

// Trace renders one row per frontier removal.
func Trace(w io.Writer, snapshots []gridastar.StepSnapshot) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Step", "Current", "Cost", "Estimate", "Frontier", "Visited", "Note"})
	for _, snapshot := range snapshots {
		if !snapshot.Removed {
			continue
		}
		t.AppendRow(table.Row{
			snapshot.StepIndex,
			snapshot.Current,
			snapshot.Cost,
			snapshot.Estimate,
			len(snapshot.Frontier),
			len(snapshot.Visited),
			note(snapshot),
		})
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func note(snapshot gridastar.StepSnapshot) string {
	switch {
	case snapshot.Found:
		return "goal"
	case snapshot.Skipped:
		return "already expanded"
	default:
		return ""
	}
}
