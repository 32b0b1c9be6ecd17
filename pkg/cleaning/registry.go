package cleaning

import (
	"fmt"
	"sort"
	"strings"
)

// Factory creates strategy instances.
type Factory func() Strategy

var registry = map[string]Factory{
	"remove_duplicates":         func() Strategy { return RemoveDuplicates{} },
	"remove_columns":            func() Strategy { return RemoveColumns{} },
	"rename_headers":            func() Strategy { return RenameHeaders{} },
	"filter_valid_foreign_keys": func() Strategy { return FilterValidForeignKeys{} },
	"remove_disabled":           func() Strategy { return RemoveDisabled{} },
}

// NewStrategy creates a strategy by registry name.
func NewStrategy(name string) (Strategy, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s (available: %s)", name, strings.Join(Available(), ", "))
	}
	return factory(), nil
}

// Register adds a custom strategy factory. Registering an existing name
// replaces the previous factory.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Available returns the sorted list of registered strategy names.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
