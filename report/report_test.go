package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pdrpinto/gridastar"
)

var detour = gridastar.Result{
	Path:     []gridastar.Cell{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 1}},
	Cost:     4,
	Expanded: 6,
	Found:    true,
}

func TestWritePlain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		result gridastar.Result
		want   string
	}{
		{name: "path", result: detour, want: "(1, 2)\n(2, 2)\n(3, 2)\n(3, 1)\n"},
		{name: "start is goal", result: gridastar.Result{Path: []gridastar.Cell{}, Found: true}, want: ""},
		{name: "unreachable", result: gridastar.Result{Expanded: 3}, want: "no path found\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := Write(&buf, Plain, tt.result); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Write() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Write(&buf, JSON, detour); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	var got jsonResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	want := jsonResult{Found: true, Cost: 4, Expanded: 6, Path: [][2]int{{1, 2}, {2, 2}, {3, 2}, {3, 1}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONUnreachableHasEmptyPath(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Write(&buf, JSON, gridastar.Result{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"path":[]`) {
		t.Errorf("Write() = %s, want an empty path array", buf.String())
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Write(&buf, Table, detour); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"STEP", "COST", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"plain", "TABLE", "json"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", name, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(\"xml\") succeeded, want error")
	}
}

func TestTrace(t *testing.T) {
	t.Parallel()
	grid := gridastar.NewGrid(5, 5, gridastar.Cell{X: 1, Y: 1}, gridastar.Cell{X: 3, Y: 1}, nil)
	stepper := gridastar.NewStepper(grid)
	var snapshots []gridastar.StepSnapshot
	for !stepper.Done() {
		snapshots = append(snapshots, stepper.Step())
	}

	var buf bytes.Buffer
	if err := Trace(&buf, snapshots); err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"(1, 1)", "(2, 1)", "(3, 1)", "goal"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
}
