package parser

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Handler reacts to the events of one open element.
type Handler interface {
	// StartElement is called for every direct child tag. The returned
	// handler receives the child's own events.
	StartElement(name string, attrs Attributes) (Handler, error)
	// Characters is called with character data found directly inside the
	// element. It may be called several times per element.
	Characters(text string) error
	// Finished is called once, when the element closes.
	Finished() error
}

// handlerState tracks the lifecycle of a handler instance.
type handlerState int

const (
	stateCreated handlerState = iota
	stateInitializing
	stateActive
	stateFinished
	stateFailed
)

func (s handlerState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateInitializing:
		return "initializing"
	case stateActive:
		return "active"
	case stateFinished:
		return "finished"
	default:
		return "failed"
	}
}

type eventKind int

const (
	startEvent eventKind = iota
	textEvent
	endEvent
)

// event is what a front-end produces for the engine.
type event struct {
	kind  eventKind
	name  string
	attrs Attributes
	text  string
	loc   Location
}

// eventSource yields document events in order and io.EOF at the end.
type eventSource interface {
	next() (event, error)
}

// locator exposes the position of the event being processed.
type locator interface {
	Location() Location
}

// position is the location of the event runDocument is dispatching.
type position struct{ loc Location }

func (p *position) Location() Location { return p.loc }

// runDocument drives one document through the handler stack rooted at root.
// setLoc is called before every event is dispatched.
func runDocument(ctx context.Context, src eventSource, root Handler, setLoc func(Location)) error {
	stack := []Handler{root}
	var names []string
	pos := &position{}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := src.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		setLoc(ev.loc)
		pos.loc = ev.loc

		top := stack[len(stack)-1]
		switch ev.kind {
		case startEvent:
			child, err := top.StartElement(ev.name, ev.attrs)
			if err != nil {
				return err
			}
			if child == nil {
				child = &emptyHandler{tag: ev.name, loc: pos}
			}
			stack = append(stack, child)
			names = append(names, ev.name)
		case textEvent:
			if err := top.Characters(ev.text); err != nil {
				return err
			}
		case endEvent:
			if len(stack) == 1 {
				return NewParseError(ev.loc, "Unexpected closing tag </%s>", ev.name)
			}
			stack = stack[:len(stack)-1]
			names = names[:len(names)-1]
			if err := top.Finished(); err != nil {
				return err
			}
		}
	}

	if len(stack) > 1 {
		return NewParseError(pos.loc, "Unexpected end of document, <%s> is still open", names[len(names)-1])
	}
	return nil
}

// emptyHandler is used for elements that accept no content.
type emptyHandler struct {
	tag string
	loc locator
}

func (h *emptyHandler) StartElement(name string, _ Attributes) (Handler, error) {
	return nil, NewParseError(h.location(), "<%s> does not support nested element <%s>", h.tag, name)
}

func (h *emptyHandler) Characters(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return NewParseError(h.location(), "<%s> does not support nested text", h.tag)
}

func (h *emptyHandler) Finished() error { return nil }

func (h *emptyHandler) location() Location {
	if h.loc == nil {
		return Location{}
	}
	return h.loc.Location()
}
