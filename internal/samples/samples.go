// Package samples holds a registry of named programs built with tsgen. The
// CLI renders them and the tests pin their output.
package samples

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/risor-io/tsgen"
	"github.com/risor-io/tsgen/errz"
)

// ErrNotFound is returned by Get for an unregistered name.
var ErrNotFound = errors.New("sample not found")

// Sample is one named program.
type Sample struct {
	Name        string
	Description string
	Program     tsgen.Producer
}

var (
	mu       sync.RWMutex
	registry = map[string]Sample{}
)

// Register adds s to the registry. It panics on an empty or duplicate name.
func Register(s Sample) {
	mu.Lock()
	defer mu.Unlock()
	if s.Name == "" {
		panic("samples: empty sample name")
	}
	if _, dup := registry[s.Name]; dup {
		panic("samples: duplicate sample " + s.Name)
	}
	registry[s.Name] = s
}

// Get returns the named sample. Unknown names produce an error wrapping
// ErrNotFound with close-name suggestions.
func Get(name string) (Sample, error) {
	mu.RLock()
	s, ok := registry[name]
	mu.RUnlock()
	if ok {
		return s, nil
	}
	if hint := errz.Hint(name, Names()); hint != "" {
		return Sample{}, fmt.Errorf("%w: %q. %s", ErrNotFound, name, hint)
	}
	return Sample{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names returns the registered names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered sample sorted by name.
func All() []Sample {
	names := Names()
	out := make([]Sample, 0, len(names))
	mu.RLock()
	defer mu.RUnlock()
	for _, name := range names {
		out = append(out, registry[name])
	}
	return out
}
