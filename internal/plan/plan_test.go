package plan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/finplanhq/finplan/internal/model"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	want := Default()

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatal("loaded plan differs from the saved plan")
	}
}

func TestSave_CreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", DefaultFileName)

	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
	if !Exists(path) {
		t.Fatal("Exists = false after Save")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Load of a missing file = nil error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load error = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("timeline = [broken"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed TOML = nil error")
	}
}

func TestDefault_PassesValidation(t *testing.T) {
	a := Default()
	if err := a.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if a.Timeline.Scenario != model.ScenarioBase {
		t.Fatalf("default scenario = %q, want %q", a.Timeline.Scenario, model.ScenarioBase)
	}
}

func TestDefault_FreshLineItemIDs(t *testing.T) {
	a, b := Default(), Default()
	if a.Team.Members[0].ID == b.Team.Members[0].ID {
		t.Fatal("two Default() calls share a team member ID")
	}
	if a.Funding[0].ID == b.Funding[0].ID {
		t.Fatal("two Default() calls share a funding round ID")
	}
}
