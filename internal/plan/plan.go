// Package plan reads and writes the assumption document: a TOML file the
// CLI and TUI load, validate, and hand to the projection engine as an
// immutable snapshot.
package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/finplanhq/finplan/internal/model"
)

// DefaultFileName is the plan file looked up in the working directory when
// no --plan flag is given.
const DefaultFileName = "finplan.toml"

// Load reads and decodes a plan file. The returned assumptions are not yet
// validated; callers pass them through model.Assumptions.Validate (the
// engine re-validates regardless).
func Load(path string) (model.Assumptions, error) {
	var a model.Assumptions

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("reading plan: %w", err)
	}
	if err := toml.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("parsing plan %s: %w", path, err)
	}
	return a, nil
}

// Save writes the plan to disk.
func Save(path string, a model.Assumptions) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating plan dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating plan file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return nil
}

// Exists returns true if a plan file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
