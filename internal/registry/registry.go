package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/buildgrid/internal/model"
)

// Constructor builds a fresh, unconfigured element.
type Constructor func() model.Element

// Kind tells whether a definition is a task or a datatype.
type Kind int

const (
	KindTask Kind = iota
	KindType
)

func (k Kind) String() string {
	if k == KindType {
		return "type"
	}
	return "task"
}

// Module is the interface that all element modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Definitions is the read-only view of a registry.
type Definitions interface {
	// Lookup returns the constructor registered for a tag name.
	Lookup(name string) (Constructor, Kind, bool)
	// Names returns every registered name of the given kind, sorted.
	Names(kind Kind) []string
}

// Registry holds all the registered task and datatype constructors for a
// single application instance.
type Registry struct {
	tasks map[string]Constructor
	types map[string]Constructor
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		tasks: make(map[string]Constructor),
		types: make(map[string]Constructor),
	}
}

// RegisterTask registers a task constructor. Registering the same name twice
// is a programming error and panics.
func (r *Registry) RegisterTask(name string, ctor Constructor) {
	r.register(KindTask, name, ctor)
}

// RegisterType registers a datatype constructor. Registering the same name
// twice is a programming error and panics.
func (r *Registry) RegisterType(name string, ctor Constructor) {
	r.register(KindType, name, ctor)
}

func (r *Registry) register(kind Kind, name string, ctor Constructor) {
	if ctor == nil {
		panic(fmt.Sprintf("%s '%s' registered with a nil constructor", kind, name))
	}
	if _, _, exists := r.Lookup(name); exists {
		panic(fmt.Sprintf("element with name '%s' already registered", name))
	}
	slog.Debug("Registering element.", "kind", kind.String(), "name", name)
	if kind == KindType {
		r.types[name] = ctor
		return
	}
	r.tasks[name] = ctor
}

// Lookup implements Definitions.
func (r *Registry) Lookup(name string) (Constructor, Kind, bool) {
	if ctor, ok := r.tasks[name]; ok {
		return ctor, KindTask, true
	}
	if ctor, ok := r.types[name]; ok {
		return ctor, KindType, true
	}
	return nil, KindTask, false
}

// Names implements Definitions.
func (r *Registry) Names(kind Kind) []string {
	table := r.tasks
	if kind == KindType {
		table = r.types
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
