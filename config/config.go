package config

import (
	"encoding/json"
	"os"
	"sync"
)

const (
	DensityComfortable = "Comfortable"
	DensityCompact     = "Compact"
)

// Prefs are the presentation settings kept between runs.
type Prefs struct {
	LastSearch  string         `json:"last_search"`
	Density     string         `json:"density"`
	SortColumn  string         `json:"sort_column,omitempty"`
	SortReverse bool           `json:"sort_reverse,omitempty"`
	Columns     map[string]int `json:"columns,omitempty"`
	Window      *WindowSize    `json:"window,omitempty"`
}

type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultPrefsPath is the prefs file in the working directory.
const DefaultPrefsPath = "./ui_prefs.json"

// Store holds the prefs file contents in memory.
type Store struct {
	path  string
	mu    sync.RWMutex
	prefs Prefs
}

func defaults() Prefs {
	return Prefs{Density: DensityComfortable}
}

// Load reads path. A missing file yields the defaults and no error. On any
// other error the returned Store still holds the defaults.
func Load(path string) (*Store, error) {
	s := &Store{path: path, prefs: defaults()}

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	var tmp Prefs
	if err := json.Unmarshal(file, &tmp); err != nil {
		return s, err
	}
	if tmp.Density == "" {
		tmp.Density = DensityComfortable
	}
	s.prefs = tmp
	return s, nil
}

func (s *Store) Get() Prefs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Save replaces the prefs and writes them to disk. The in-memory copy is
// updated even when the write fails.
func (s *Store) Save(newPrefs Prefs) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newPrefs.Density == "" {
		newPrefs.Density = DensityComfortable
	}
	s.prefs = newPrefs

	file, err := json.MarshalIndent(newPrefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, file, 0644)
}

// Update applies fn to a copy of the current prefs and saves the result.
func (s *Store) Update(fn func(*Prefs)) error {
	p := s.Get()
	fn(&p)
	return s.Save(p)
}
