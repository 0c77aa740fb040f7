package gridfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pdrpinto/gridastar"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		input         string
		wantWidth     int
		wantHeight    int
		wantStart     gridastar.Cell
		wantGoal      gridastar.Cell
		wantObstacles []gridastar.Cell
	}{
		{
			name:          "four lines",
			input:         "4,6\n1,1\n3,1\n2,1-2,2\n",
			wantWidth:     6,
			wantHeight:    4,
			wantStart:     gridastar.Cell{X: 1, Y: 1},
			wantGoal:      gridastar.Cell{X: 3, Y: 1},
			wantObstacles: []gridastar.Cell{{X: 2, Y: 1}, {X: 2, Y: 2}},
		},
		{
			name:          "crlf and spaces",
			input:         "5, 5\r\n1 ,1\r\n3,1\r\n 4,4 \r\n",
			wantWidth:     5,
			wantHeight:    5,
			wantStart:     gridastar.Cell{X: 1, Y: 1},
			wantGoal:      gridastar.Cell{X: 3, Y: 1},
			wantObstacles: []gridastar.Cell{{X: 4, Y: 4}},
		},
		{
			name:          "missing obstacle line",
			input:         "5,5\n1,1\n3,1",
			wantWidth:     5,
			wantHeight:    5,
			wantStart:     gridastar.Cell{X: 1, Y: 1},
			wantGoal:      gridastar.Cell{X: 3, Y: 1},
			wantObstacles: []gridastar.Cell{},
		},
		{
			name:          "blank obstacle line and trailing lines",
			input:         "5,5\n1,1\n3,1\n\nignored\n",
			wantWidth:     5,
			wantHeight:    5,
			wantStart:     gridastar.Cell{X: 1, Y: 1},
			wantGoal:      gridastar.Cell{X: 3, Y: 1},
			wantObstacles: []gridastar.Cell{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			grid, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if grid.Width() != tt.wantWidth || grid.Height() != tt.wantHeight {
				t.Errorf("size = %dx%d, want %dx%d", grid.Width(), grid.Height(), tt.wantWidth, tt.wantHeight)
			}
			if grid.Start() != tt.wantStart {
				t.Errorf("Start() = %v, want %v", grid.Start(), tt.wantStart)
			}
			if grid.Goal() != tt.wantGoal {
				t.Errorf("Goal() = %v, want %v", grid.Goal(), tt.wantGoal)
			}
			if diff := cmp.Diff(tt.wantObstacles, grid.Obstacles()); diff != "" {
				t.Errorf("Obstacles() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		wantLine  int
		wantField string
	}{
		{name: "empty", input: "", wantLine: 1, wantField: "dimensions"},
		{name: "missing goal", input: "5,5\n1,1\n", wantLine: 3, wantField: "goal"},
		{name: "three dimension fields", input: "5,5,5\n1,1\n3,1\n", wantLine: 1, wantField: "dimensions"},
		{name: "single start field", input: "5,5\n1\n3,1\n", wantLine: 2, wantField: "start"},
		{name: "non-numeric goal", input: "5,5\n1,1\nthree,1\n", wantLine: 3, wantField: "goal"},
		{name: "bad obstacle", input: "5,5\n1,1\n3,1\n2,1-x,2\n", wantLine: 4, wantField: "obstacles"},
		{name: "dangling separator", input: "5,5\n1,1\n3,1\n2,1-\n", wantLine: 4, wantField: "obstacles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("Parse() error = %v, want ErrMalformedInput", err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse() error %T is not a *ParseError", err)
			}
			if parseErr.Line != tt.wantLine || parseErr.Field != tt.wantField {
				t.Errorf("ParseError at line %d (%s), want line %d (%s)", parseErr.Line, parseErr.Field, tt.wantLine, tt.wantField)
			}
		})
	}
}
