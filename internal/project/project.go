// Package project holds the process-wide state built while loading a build
// file: the target table, the reference table and the definitions registry.
//
// A Project is created once per load and passed explicitly to everything
// that mutates it. It is not safe for concurrent use; loading is a single,
// ordered pass over the document.
package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/buildgrid/internal/ctxlog"
	"github.com/specialistvlad/buildgrid/internal/model"
	"github.com/specialistvlad/buildgrid/internal/registry"
)

// Severities accepted by Log.
const (
	MsgDebug   = slog.LevelDebug
	MsgVerbose = ctxlog.LevelVerbose
	MsgInfo    = slog.LevelInfo
	MsgWarn    = slog.LevelWarn
	MsgErr     = slog.LevelError
)

// ErrDuplicateTarget is returned by AddTarget when the name is taken.
var ErrDuplicateTarget = errors.New("duplicate target")

// Project is the shared namespace targets and references are registered in.
type Project struct {
	name          string
	description   string
	defaultTarget string
	baseDir       string

	targets     map[string]*model.Target
	targetOrder []string
	references  map[string]any
	implicit    *model.Target

	definitions registry.Definitions
	logger      *slog.Logger
	logCtx      context.Context
}

// New creates an empty project. defs may be nil, in which case no task or
// datatype can be resolved.
func New(logger *slog.Logger, defs registry.Definitions) *Project {
	if defs == nil {
		defs = registry.New()
	}
	return &Project{
		targets:     make(map[string]*model.Target),
		references:  make(map[string]any),
		implicit:    model.NewTarget(""),
		definitions: defs,
		logger:      logger,
		logCtx:      context.Background(),
	}
}

// SetContext sets the context diagnostics are logged with, normally the
// context of the load in progress, and returns the previous one.
func (p *Project) SetContext(ctx context.Context) context.Context {
	prev := p.logCtx
	if ctx == nil {
		ctx = context.Background()
	}
	p.logCtx = ctx
	return prev
}

func (p *Project) Name() string                { return p.name }
func (p *Project) SetName(name string)         { p.name = name }
func (p *Project) Description() string         { return p.description }
func (p *Project) SetDescription(desc string)  { p.description = desc }
func (p *Project) DefaultTarget() string       { return p.defaultTarget }
func (p *Project) SetDefaultTarget(def string) { p.defaultTarget = def }
func (p *Project) BaseDir() string             { return p.baseDir }
func (p *Project) SetBaseDir(dir string)       { p.baseDir = dir }

// Targets returns a snapshot of the target table.
func (p *Project) Targets() map[string]*model.Target {
	out := make(map[string]*model.Target, len(p.targets))
	for name, t := range p.targets {
		out[name] = t
	}
	return out
}

// Target looks up a registered target by the name it was registered under.
func (p *Project) Target(name string) (*model.Target, bool) {
	t, ok := p.targets[name]
	return t, ok
}

// HasTarget reports whether a name is taken in the target table.
func (p *Project) HasTarget(name string) bool {
	_, ok := p.targets[name]
	return ok
}

// TargetNames returns every registered name in registration order.
func (p *Project) TargetNames() []string {
	out := make([]string, len(p.targetOrder))
	copy(out, p.targetOrder)
	return out
}

// AddTarget registers a target under name. A taken name is never
// overwritten.
func (p *Project) AddTarget(name string, target *model.Target) error {
	if _, exists := p.targets[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, name)
	}
	p.targets[name] = target
	p.targetOrder = append(p.targetOrder, name)
	p.Log(fmt.Sprintf("+Target: %s", name), MsgDebug)
	return nil
}

// ImplicitTarget collects tasks declared outside any target.
func (p *Project) ImplicitTarget() *model.Target {
	return p.implicit
}

// AddReference registers an object under id. An existing id is replaced.
func (p *Project) AddReference(id string, ref any) {
	if _, exists := p.references[id]; exists {
		p.Log(fmt.Sprintf("Overriding previous definition of reference to %s", id), MsgVerbose)
	} else {
		p.Log(fmt.Sprintf("Adding reference: %s", id), MsgDebug)
	}
	p.references[id] = ref
}

// Reference looks up an object by id.
func (p *Project) Reference(id string) (any, bool) {
	ref, ok := p.references[id]
	return ref, ok
}

// References returns a snapshot of the reference table.
func (p *Project) References() map[string]any {
	out := make(map[string]any, len(p.references))
	for id, ref := range p.references {
		out[id] = ref
	}
	return out
}

// DataTypeDefinitions exposes the task and datatype registry read-only.
func (p *Project) DataTypeDefinitions() registry.Definitions {
	return p.definitions
}

// Log emits a project diagnostic at the given severity.
func (p *Project) Log(msg string, level slog.Level) {
	if p.logger == nil {
		return
	}
	attrs := []any{}
	if p.name != "" {
		attrs = append(attrs, "project", p.name)
	}
	p.logger.Log(p.logCtx, level, msg, attrs...)
}
