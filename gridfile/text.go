// Package gridfile reads grid descriptions from disk.
//
// The text format has four lines:
//
//	height,width
//	start_x,start_y
//	goal_x,goal_y
//	x1,y1-x2,y2-...
//
// The obstacle line may be blank or missing. Files ending in .yaml or .yml are
// read with ParseYAML instead.
package gridfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdrpinto/gridastar"
)

var lineFields = [...]string{"dimensions", "start", "goal", "obstacles"}

// Parse reads the text format.
func Parse(r io.Reader) (*gridastar.Grid, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for len(lines) < len(lineFields) && scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grid description: %w", err)
	}
	if len(lines) < 3 {
		return nil, &ParseError{
			Line:  len(lines) + 1,
			Field: lineFields[len(lines)],
			Err:   errors.New("unexpected end of input"),
		}
	}

	height, width, err := parsePair(lines[0], 1)
	if err != nil {
		return nil, err
	}
	startX, startY, err := parsePair(lines[1], 2)
	if err != nil {
		return nil, err
	}
	goalX, goalY, err := parsePair(lines[2], 3)
	if err != nil {
		return nil, err
	}

	var obstacles []gridastar.Cell
	if len(lines) == 4 && strings.TrimSpace(lines[3]) != "" {
		for _, field := range strings.Split(lines[3], "-") {
			x, y, err := parsePair(field, 4)
			if err != nil {
				return nil, err
			}
			obstacles = append(obstacles, gridastar.Cell{X: x, Y: y})
		}
	}

	return gridastar.NewGrid(
		width,
		height,
		gridastar.Cell{X: startX, Y: startY},
		gridastar.Cell{X: goalX, Y: goalY},
		obstacles,
	), nil
}

// parsePair reads "a,b" on the given 1-based line.
func parsePair(text string, line int) (int, int, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return 0, 0, &ParseError{
			Line:  line,
			Field: lineFields[line-1],
			Err:   fmt.Errorf("want 2 comma-separated integers in %q, got %d fields", text, len(parts)),
		}
	}
	var values [2]int
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, &ParseError{Line: line, Field: lineFields[line-1], Err: err}
		}
		values[i] = value
	}
	return values[0], values[1], nil
}
