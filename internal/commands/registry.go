package commands

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Register adds c under its name and aliases.
// Returns an error if any of them is taken.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, name := range names {
		if prev, exists := r.cmds[name]; exists {
			return fmt.Errorf("command name %q already registered by %s", name, prev.Name())
		}
	}
	for _, name := range names {
		r.cmds[name] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns each command once, sorted by primary name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]Command, len(r.cmds))
	for _, cmd := range r.cmds {
		byName[cmd.Name()] = cmd
	}

	result := make([]Command, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		result = append(result, byName[name])
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry. It panics on a name clash.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
