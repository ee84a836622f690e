package property

import (
	"fmt"

	"github.com/specialistvlad/buildgrid/internal/model"
	"github.com/specialistvlad/buildgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Task is the <property> task. It either names a single property or points
// at a properties file.
type Task struct {
	Name     string
	Value    string
	File     string
	Override bool

	hasValue bool
}

// ElementName implements model.Element.
func (t *Task) ElementName() string { return "property" }

// SetAttribute implements model.Configurable.
func (t *Task) SetAttribute(name, value string) error {
	switch name {
	case "name":
		t.Name = value
	case "value":
		t.Value = value
		t.hasValue = true
	case "file":
		t.File = value
	case "override":
		t.Override = model.BooleanValue(value)
	default:
		return fmt.Errorf("doesn't support the '%s' attribute", name)
	}
	return nil
}

// Validate implements model.Validator.
func (t *Task) Validate() error {
	switch {
	case t.File == "" && t.Name == "":
		return fmt.Errorf("you must specify either name or file")
	case t.Name != "" && !t.hasValue:
		return fmt.Errorf("property '%s' needs a value", t.Name)
	case t.File != "" && t.Name != "":
		return fmt.Errorf("name and file are mutually exclusive")
	}
	return nil
}

// Register registers the task with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTask("property", func() model.Element { return new(Task) })
}
