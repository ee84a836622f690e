package echo

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/buildgrid/internal/model"
	"github.com/specialistvlad/buildgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Task is the <echo> task. The message comes from the message attribute or
// from the text body, never both.
type Task struct {
	Message string
	Level   string
	File    string
	Append  bool

	text strings.Builder
}

var levels = map[string]struct{}{
	"error": {}, "warning": {}, "info": {}, "verbose": {}, "debug": {},
}

// ElementName implements model.Element.
func (t *Task) ElementName() string { return "echo" }

// SetAttribute implements model.Configurable.
func (t *Task) SetAttribute(name, value string) error {
	switch name {
	case "message", "msg":
		t.Message = value
	case "level":
		if _, ok := levels[value]; !ok {
			return fmt.Errorf("level '%s' is not one of error, warning, info, verbose, debug", value)
		}
		t.Level = value
	case "file":
		t.File = value
	case "append":
		t.Append = model.BooleanValue(value)
	default:
		return fmt.Errorf("doesn't support the '%s' attribute", name)
	}
	return nil
}

// AddText implements model.TextReceiver.
func (t *Task) AddText(text string) {
	t.text.WriteString(text)
}

// Text returns the trimmed text body.
func (t *Task) Text() string {
	return strings.TrimSpace(t.text.String())
}

// Validate implements model.Validator.
func (t *Task) Validate() error {
	if t.Message != "" && t.Text() != "" {
		return fmt.Errorf("message attribute and text body are mutually exclusive")
	}
	if t.Level == "" {
		t.Level = "info"
	}
	return nil
}

// Register registers the task with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterTask("echo", func() model.Element { return new(Task) })
}
