package parser

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/buildgrid/internal/model"
	"github.com/specialistvlad/buildgrid/internal/project"
)

// TargetHandler handles one <target> element and its nested tasks and
// datatypes.
//
// Lifecycle: Init decodes the attributes and registers the target, after
// which StartElement may be called any number of times and Finished once.
// A failed Init leaves the handler unusable.
type TargetHandler struct {
	cfg    *Configurator
	state  handlerState
	target *model.Target
}

func newTargetHandler(cfg *Configurator) *TargetHandler {
	return &TargetHandler{cfg: cfg}
}

// Init creates the target from the tag attributes and registers it in the
// project.
func (h *TargetHandler) Init(tag string, attrs Attributes) error {
	if h.state != stateCreated {
		return fmt.Errorf("target handler: Init called in state %s", h.state)
	}
	h.state = stateInitializing

	loc := h.cfg.Location()
	spec, err := decodeTargetSpec(attrs, loc)
	if err != nil {
		h.state = stateFailed
		return err
	}

	ic := importContext{
		importing:   h.cfg.IsIgnoringProjectTag(),
		projectName: h.cfg.CurrentProjectName(),
	}
	target, err := registerTarget(spec, h.cfg.Project(), ic, loc)
	if err != nil {
		h.state = stateFailed
		return err
	}

	h.target = target
	h.state = stateActive
	return nil
}

// Target returns the target under construction, nil before a successful Init.
func (h *TargetHandler) Target() *model.Target { return h.target }

// StartElement hands a nested tag to the element processor, bound to the
// target under construction.
func (h *TargetHandler) StartElement(name string, attrs Attributes) (Handler, error) {
	if h.state != stateActive {
		return nil, fmt.Errorf("target handler: nested <%s> in state %s", name, h.state)
	}
	defs := h.cfg.Project().DataTypeDefinitions()
	return h.cfg.processor.Process(h.target, name, attrs, defs)
}

// Characters rejects text directly inside a target.
func (h *TargetHandler) Characters(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return NewParseError(h.cfg.Location(), "Unexpected text inside target '%s'", h.targetName())
}

// Finished warns about a target that neither depends on anything nor
// contains any task.
func (h *TargetHandler) Finished() error {
	if h.state != stateActive {
		return fmt.Errorf("target handler: Finished called in state %s", h.state)
	}
	h.state = stateFinished
	warnIfEmpty(h.target, h.cfg.Project())
	return nil
}

func (h *TargetHandler) targetName() string {
	if h.target == nil {
		return ""
	}
	return h.target.Name()
}

// warnIfEmpty is advisory only; it never fails the load.
func warnIfEmpty(t *model.Target, p *project.Project) {
	if len(t.Dependencies()) == 0 && len(t.Tasks()) == 0 {
		p.Log(fmt.Sprintf("target '%s' has no tasks or dependencies", t.Name()), project.MsgWarn)
	}
}
