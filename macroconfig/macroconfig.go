// Package macroconfig persists user macro definitions (spec.md §6 leaves
// persistence "the caller's concern") as a YAML document of authored
// key/value pairs, mirroring cgdb's own .cgdbrc "map"/"unmap" directives in
// spirit without pulling in cgdbrc's full config-command grammar.
package macroconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/forslund/cgdb-kui/kui"
)

// Entry is one authored macro: the key sequence a user types and the
// sequence it expands to, both as originally written (with <NAME>
// escapes), not the parsed token form.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Load reads entries from path and registers each into ms. A missing file
// is not an error — it means no macros have been saved yet.
func Load(path string, ms *kui.MapSet) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("macroconfig: read %s: %w", path, err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("macroconfig: parse %s: %w", path, err)
	}

	for _, e := range entries {
		if err := ms.Register(e.Key, e.Value); err != nil {
			return fmt.Errorf("macroconfig: register %q: %w", e.Key, err)
		}
	}
	return nil
}

// Save writes ms's current macros to path as YAML, in sorted-key order
// (MapSet.GetMaps already returns them sorted by literal key).
func Save(path string, ms *kui.MapSet) error {
	maps := ms.GetMaps()
	entries := make([]Entry, len(maps))
	for i, m := range maps {
		entries[i] = Entry{Key: m.OriginalKey(), Value: m.OriginalValue()}
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("macroconfig: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("macroconfig: write %s: %w", path, err)
	}
	return nil
}
