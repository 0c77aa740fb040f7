package gridfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdrpinto/gridastar"
)

// Load reads the grid description at path, choosing the format by extension.
func Load(path string) (*gridastar.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("opening grid description: %w", err)
	}
	defer file.Close()

	var grid *gridastar.Grid
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		grid, err = ParseYAML(file)
	default:
		grid, err = Parse(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}
