package parser

import (
	"context"
	"testing"

	"github.com/specialistvlad/buildgrid/internal/project"
	"github.com/specialistvlad/buildgrid/internal/registry"
	"github.com/specialistvlad/buildgrid/internal/testutil"
	"github.com/specialistvlad/buildgrid/modules/echo"
	"github.com/specialistvlad/buildgrid/modules/fileset"
	"github.com/specialistvlad/buildgrid/modules/property"
)

// newTestProject returns a project with the built-in modules registered and
// a recorder capturing its diagnostics.
func newTestProject(t *testing.T) (*project.Project, *testutil.Recorder) {
	t.Helper()

	reg := registry.New()
	for _, m := range []registry.Module{&echo.Module{}, &fileset.Module{}, &property.Module{}} {
		m.Register(reg)
	}
	logger, rec := testutil.NewRecordingLogger()
	return project.New(logger, reg), rec
}

// parseString loads a single in-memory build file into a fresh project.
func parseString(t *testing.T, file, src string) (*project.Project, *testutil.Recorder, error) {
	t.Helper()

	p, rec := newTestProject(t)
	err := NewConfigurator(p).ParseSource(context.Background(), file, []byte(src))
	return p, rec, err
}
