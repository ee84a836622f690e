package parser

import (
	"strings"

	"github.com/specialistvlad/buildgrid/internal/model"
	"github.com/specialistvlad/buildgrid/internal/registry"
)

// ElementProcessor turns a nested tag into a task or datatype bound to
// parent. The returned handler receives the tag's own content.
type ElementProcessor interface {
	Process(parent model.Container, name string, attrs Attributes, defs registry.Definitions) (Handler, error)
}

// registryProcessor is the default ElementProcessor. It resolves tag names
// through the parent's NestedCreator first and the registry second.
type registryProcessor struct {
	cfg *Configurator
}

func (p *registryProcessor) Process(parent model.Container, name string, attrs Attributes, defs registry.Definitions) (Handler, error) {
	loc := p.cfg.Location()

	element, err := createElement(parent, name, defs, loc)
	if err != nil {
		return nil, err
	}
	id, err := configureElement(element, attrs, loc)
	if err != nil {
		return nil, err
	}
	if err := parent.AddElement(element); err != nil {
		return nil, wrapBuildError(loc, err)
	}
	if id != "" {
		p.cfg.Project().AddReference(id, element)
	}

	return &elementHandler{cfg: p.cfg, name: name, element: element}, nil
}

func createElement(parent model.Container, name string, defs registry.Definitions, loc Location) (model.Element, error) {
	if creator, ok := parent.(model.NestedCreator); ok {
		if element, ok := creator.CreateElement(name); ok {
			return element, nil
		}
	}
	if ctor, _, ok := defs.Lookup(name); ok {
		return ctor(), nil
	}
	return nil, NewBuildError(loc, "Could not create task or type of type: %s", name)
}

// configureElement applies attrs and returns the id attribute, which is
// never passed to the element itself.
func configureElement(element model.Element, attrs Attributes, loc Location) (string, error) {
	var id string
	for _, attr := range attrs {
		if attr.Name == "id" {
			id = attr.Value
			continue
		}
		configurable, ok := element.(model.Configurable)
		if !ok {
			return "", NewParseError(loc, "Unexpected attribute '%s'", attr.Name)
		}
		if err := configurable.SetAttribute(attr.Name, attr.Value); err != nil {
			return "", &BuildError{
				Message:  "<" + element.ElementName() + "> " + err.Error(),
				Location: loc,
				Err:      err,
			}
		}
	}
	return id, nil
}

// elementHandler routes the content of a task or datatype tag.
type elementHandler struct {
	cfg     *Configurator
	name    string
	element model.Element
}

func (h *elementHandler) StartElement(name string, attrs Attributes) (Handler, error) {
	container, ok := h.element.(model.Container)
	if !ok {
		return nil, NewParseError(h.cfg.Location(), "<%s> does not support nested element <%s>", h.name, name)
	}
	return h.cfg.processor.Process(container, name, attrs, h.cfg.Project().DataTypeDefinitions())
}

func (h *elementHandler) Characters(text string) error {
	receiver, ok := h.element.(model.TextReceiver)
	if !ok {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return NewBuildError(h.cfg.Location(), "<%s> does not support nested text data", h.name)
	}
	receiver.AddText(text)
	return nil
}

func (h *elementHandler) Finished() error {
	if v, ok := h.element.(model.Validator); ok {
		if err := v.Validate(); err != nil {
			return &BuildError{
				Message:  "<" + h.name + "> " + err.Error(),
				Location: h.cfg.Location(),
				Err:      err,
			}
		}
	}
	return nil
}
