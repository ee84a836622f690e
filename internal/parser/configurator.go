package parser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/buildgrid/internal/project"
)

// Configurator loads build files into a project and tracks the import
// context while doing so.
type Configurator struct {
	project   *project.Project
	processor ElementProcessor

	ctx         context.Context
	location    Location
	currentFile string

	currentProjectName string
	ignoringProjectTag bool

	imported map[string]struct{}
}

// Option customises a Configurator.
type Option func(*Configurator)

// WithElementProcessor replaces the registry-backed element processor.
func WithElementProcessor(p ElementProcessor) Option {
	return func(c *Configurator) { c.processor = p }
}

// NewConfigurator creates a configurator that loads into p.
func NewConfigurator(p *project.Project, opts ...Option) *Configurator {
	c := &Configurator{
		project:  p,
		ctx:      context.Background(),
		imported: make(map[string]struct{}),
	}
	c.processor = &registryProcessor{cfg: c}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Configure is a shorthand that loads the build file at path into p.
func Configure(ctx context.Context, p *project.Project, path string) error {
	return NewConfigurator(p).Parse(ctx, path)
}

// Project returns the project being configured.
func (c *Configurator) Project() *project.Project { return c.project }

// Location returns the position of the event currently being processed.
func (c *Configurator) Location() Location { return c.location }

// CurrentProjectName is the name of the <project> enclosing the document
// being parsed. It is empty when that project has no name.
func (c *Configurator) CurrentProjectName() string { return c.currentProjectName }

// SetCurrentProjectName records the enclosing project name.
func (c *Configurator) SetCurrentProjectName(name string) { c.currentProjectName = name }

// IsIgnoringProjectTag reports whether the document being parsed is an
// import whose own <project> wrapper is suppressed.
func (c *Configurator) IsIgnoringProjectTag() bool { return c.ignoringProjectTag }

// Parse loads the main build file at path.
func (c *Configurator) Parse(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve build file %s: %w", path, err)
	}
	src, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("failed to read build file %s: %w", path, err)
	}
	return c.ParseSource(ctx, abs, src)
}

// ParseSource loads a main build file from memory. The file name selects the
// front-end (".hcl" for HCL, anything else for XML) and anchors relative
// imports.
func (c *Configurator) ParseSource(ctx context.Context, file string, src []byte) error {
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}
	c.imported[file] = struct{}{}
	return c.parseDocument(ctx, file, src)
}

// Import parses file in import mode. Relative paths are resolved against the
// directory of the file currently being parsed. A file that was loaded before,
// including the main build file and any file still being parsed, is skipped.
func (c *Configurator) Import(file string, optional bool) error {
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(c.currentFile), path)
	}
	path = filepath.Clean(path)

	if _, done := c.imported[path]; done {
		c.project.Log(fmt.Sprintf("Skipping import of %s (already imported)", path), project.MsgVerbose)
		return nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && optional {
			c.project.Log(fmt.Sprintf("Skipping import of missing optional file %s", path), project.MsgVerbose)
			return nil
		}
		return &BuildError{
			Message:  fmt.Sprintf("Cannot import %s: %v", file, err),
			Location: c.location,
			Err:      err,
		}
	}

	prevName, prevIgnoring := c.currentProjectName, c.ignoringProjectTag
	c.currentProjectName, c.ignoringProjectTag = "", true
	defer func() {
		c.currentProjectName, c.ignoringProjectTag = prevName, prevIgnoring
	}()

	c.imported[path] = struct{}{}
	c.project.Log(fmt.Sprintf("Importing file %s from %s", path, c.currentFile), project.MsgVerbose)
	return c.parseDocument(c.ctx, path, src)
}

func (c *Configurator) parseDocument(ctx context.Context, file string, src []byte) error {
	source, err := newEventSource(file, src)
	if err != nil {
		return err
	}

	prevCtx, prevFile, prevLoc := c.ctx, c.currentFile, c.location
	c.ctx, c.currentFile = ctx, file
	prevLogCtx := c.project.SetContext(ctx)
	defer func() {
		c.ctx, c.currentFile, c.location = prevCtx, prevFile, prevLoc
		c.project.SetContext(prevLogCtx)
	}()

	c.project.Log(fmt.Sprintf("Parsing build file %s", file), project.MsgDebug)
	return runDocument(ctx, source, &rootHandler{cfg: c}, func(loc Location) { c.location = loc })
}

func newEventSource(file string, src []byte) (eventSource, error) {
	if strings.EqualFold(filepath.Ext(file), ".hcl") {
		return newHCLSource(file, src)
	}
	return newXMLSource(file, src), nil
}
