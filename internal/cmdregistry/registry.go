// Package cmdregistry collects cobra commands declared across the cmd package
// and groups them by name, so the root command can attach them at startup
// without each command file knowing about its parent.
package cmdregistry

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrInvalidCommand is matched by every *InvalidCommandError.
var ErrInvalidCommand = errors.New("not a cobra command")

// InvalidCommandError reports a registration whose value is not a usable
// *cobra.Command.
type InvalidCommandError struct {
	Group string
	Name  string
	// Got is the dynamic type of the rejected value, as printed by %T.
	Got string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf(
		"register %q %q: expected a non-nil *cobra.Command, got %s; "+
			"pass the built command (e.g. newFooCmd()), not its constructor or RunE func",
		e.Group, e.Name, e.Got,
	)
}

// Is makes errors.Is(err, ErrInvalidCommand) true.
func (e *InvalidCommandError) Is(target error) bool {
	return target == ErrInvalidCommand
}

// Entry is a single registration within a group.
type Entry struct {
	Name    string
	Command *cobra.Command
}

// Decorator registers cmd and returns it unchanged.
type Decorator func(cmd *cobra.Command) *cobra.Command

// Registry maps group names to their registered commands in insertion order.
// It is not safe for concurrent mutation; registrations are expected to
// happen during package initialisation.
type Registry struct {
	groups map[string][]Entry
	order  []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{groups: make(map[string][]Entry)}
}

// Register returns a Decorator that adds a command to group under name.
// Nothing is recorded until the decorator is applied. The decorator panics
// with *InvalidCommandError if applied to a nil command.
func (r *Registry) Register(group, name string) Decorator {
	return func(cmd *cobra.Command) *cobra.Command {
		if err := r.Add(group, name, cmd); err != nil {
			panic(err)
		}

		return cmd
	}
}

// Add records v under group and name. v must be a non-nil *cobra.Command;
// anything else returns *InvalidCommandError and leaves the registry untouched.
// Duplicate names are kept.
func (r *Registry) Add(group, name string, v any) error {
	cmd, ok := v.(*cobra.Command)
	if !ok || cmd == nil {
		return &InvalidCommandError{Group: group, Name: name, Got: fmt.Sprintf("%T", v)}
	}

	if _, seen := r.groups[group]; !seen {
		r.order = append(r.order, group)
	}

	r.groups[group] = append(r.groups[group], Entry{Name: name, Command: cmd})

	return nil
}

// Groups returns the live group mapping. The map and its slices are owned by
// the registry and must not be modified.
func (r *Registry) Groups() map[string][]Entry {
	return r.groups
}

// GroupNames returns group names in the order they were first registered.
func (r *Registry) GroupNames() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)

	return names
}

// Len returns the total number of entries across all groups.
func (r *Registry) Len() int {
	n := 0
	for _, entries := range r.groups {
		n += len(entries)
	}

	return n
}

var defaultRegistry = New()

// Default returns the process-wide registry used by Register and Get.
func Default() *Registry {
	return defaultRegistry
}

// Register is shorthand for Default().Register.
func Register(group, name string) Decorator {
	return defaultRegistry.Register(group, name)
}

// Get returns the process-wide registry's groups. See Registry.Groups.
func Get() map[string][]Entry {
	return defaultRegistry.Groups()
}
