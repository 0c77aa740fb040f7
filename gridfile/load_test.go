package gridfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pdrpinto/gridastar"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("Load() error = %v, want ErrInputNotFound", err)
	}
}

func TestLoadMalformedKeepsPath(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "bad.txt", "5;5\n")
	_, err := Load(path)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("Load() error = %v, want ErrMalformedInput", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Load() error %q does not mention %s", err, path)
	}
}

func TestLoadTextAndYAMLAgree(t *testing.T) {
	t.Parallel()
	textPath := writeFile(t, "grid.txt", "5,5\n1,1\n3,1\n2,1\n")
	yamlPath := writeFile(t, "grid.yaml", strings.Join([]string{
		"width: 5",
		"height: 5",
		"start: [1, 1]",
		"goal: [3, 1]",
		"obstacles:",
		"  - [2, 1]",
		"",
	}, "\n"))

	var results []gridastar.Result
	for _, path := range []string{textPath, yamlPath} {
		grid, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", path, err)
		}
		result, err := gridastar.Search(context.Background(), grid)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}
		results = append(results, result)
	}
	if diff := cmp.Diff(results[0], results[1]); diff != "" {
		t.Errorf("text and YAML results differ (-text +yaml):\n%s", diff)
	}
	if !results[0].Found || results[0].Cost != 4 {
		t.Errorf("result = %+v, want a cost 4 detour", results[0])
	}
}
