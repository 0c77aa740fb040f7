package gridfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridastar"
)

// document is the YAML form of a grid:
//
//	width: 5
//	height: 5
//	start: [1, 1]
//	goal: [3, 1]
//	obstacles: [[2, 1]]
type document struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Start     []int   `yaml:"start"`
	Goal      []int   `yaml:"goal"`
	Obstacles [][]int `yaml:"obstacles"`
}

// ParseYAML reads the YAML format. Unknown keys are rejected.
func ParseYAML(r io.Reader) (*gridastar.Grid, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	start, err := yamlCell("start", doc.Start)
	if err != nil {
		return nil, err
	}
	goal, err := yamlCell("goal", doc.Goal)
	if err != nil {
		return nil, err
	}
	obstacles := make([]gridastar.Cell, 0, len(doc.Obstacles))
	for i, pair := range doc.Obstacles {
		obstacle, err := yamlCell(fmt.Sprintf("obstacles[%d]", i), pair)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, obstacle)
	}
	return gridastar.NewGrid(doc.Width, doc.Height, start, goal, obstacles), nil
}

func yamlCell(name string, pair []int) (gridastar.Cell, error) {
	if len(pair) != 2 {
		return gridastar.Cell{}, fmt.Errorf("%w: %s: want [x, y], got %v", ErrMalformedInput, name, pair)
	}
	return gridastar.Cell{X: pair[0], Y: pair[1]}, nil
}
