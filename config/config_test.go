package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "ui_prefs.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Get(); got.Density != DensityComfortable || got.LastSearch != "" {
		t.Errorf("defaults = %+v", got)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui_prefs.json")
	s, _ := Load(path)

	err := s.Update(func(p *Prefs) {
		p.LastSearch = "bolt"
		p.Density = DensityCompact
		p.Columns = map[string]int{"Name": 340}
	})
	if err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	got := reloaded.Get()
	if got.LastSearch != "bolt" || got.Density != DensityCompact || got.Columns["Name"] != 340 {
		t.Errorf("reloaded prefs = %+v", got)
	}
}

func TestCorruptFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui_prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err == nil {
		t.Error("Load accepted a corrupt file")
	}
	if s.Get().Density != DensityComfortable {
		t.Errorf("prefs after corrupt load = %+v", s.Get())
	}
}

func TestFailedWriteKeepsPrefsInMemory(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "missing-dir", "ui_prefs.json"))
	if err := s.Update(func(p *Prefs) { p.LastSearch = "nut" }); err == nil {
		t.Error("expected a write error")
	}
	if s.Get().LastSearch != "nut" {
		t.Error("in-memory prefs were not updated")
	}
}
