package input

import (
	"fmt"
	"sort"
)

// LoadKeyTable builds a KeyTable from action name -> key names
// Actions absent from the map keep their default bindings
// Returns error on unknown action names or invalid key names
func LoadKeyTable(keymap map[string][]string) (KeyTable, error) {
	kt := DefaultKeyTable()

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(keymap))
	for name := range keymap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		keys := keymap[name]
		if len(keys) == 0 {
			continue
		}
		action, ok := ActionByName(name)
		if !ok {
			return KeyTable{}, fmt.Errorf("keymap: unknown action %q", name)
		}

		bindings := make([]Binding, 0, len(keys))
		for _, k := range keys {
			b, err := ParseKey(k)
			if err != nil {
				return KeyTable{}, fmt.Errorf("keymap [%s]: %w", name, err)
			}
			bindings = append(bindings, b)
		}
		kt[action] = bindings
	}

	return kt, nil
}
