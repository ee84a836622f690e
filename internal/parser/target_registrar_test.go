package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/buildgrid/internal/model"
	"github.com/specialistvlad/buildgrid/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spec(name string) *targetSpec {
	return &targetSpec{name: name, hasName: true}
}

func TestRegisterTarget_NewName(t *testing.T) {
	p, _ := newTestProject(t)
	s := spec("build")
	s.depends = "a,b"
	s.id = "build-ref"
	s.description = "desc"
	s.hidden = true
	s.logSkipped = true
	s.ifCond = "x"
	s.unlessCond = "y"

	target, err := registerTarget(s, p, importContext{}, Location{})
	require.NoError(t, err)

	got, ok := p.Target("build")
	require.True(t, ok)
	assert.Same(t, target, got)
	assert.Equal(t, "build", target.Name())
	assert.Equal(t, "a,b", target.DependsRaw())
	assert.Equal(t, []string{"a", "b"}, target.Dependencies())
	assert.Equal(t, "desc", target.Description())
	assert.True(t, target.Hidden())
	assert.True(t, target.LogSkipped())
	assert.Equal(t, "x", target.If())
	assert.Equal(t, "y", target.Unless())

	ref, ok := p.Reference("build-ref")
	require.True(t, ok)
	assert.Same(t, target, ref)
}

func TestRegisterTarget_EmptyDependsLeavesListEmpty(t *testing.T) {
	p, _ := newTestProject(t)

	target, err := registerTarget(spec("build"), p, importContext{}, Location{})
	require.NoError(t, err)
	assert.Empty(t, target.Dependencies())
	assert.Empty(t, target.DependsRaw())
}

func TestRegisterTarget_DuplicateOutsideImport(t *testing.T) {
	p, _ := newTestProject(t)
	first, err := registerTarget(spec("build"), p, importContext{}, Location{})
	require.NoError(t, err)

	before := p.Targets()
	beforeNames := p.TargetNames()

	dup := spec("build")
	dup.id = "dup"
	loc := Location{File: "build.xml", Line: 9, Column: 3}
	target, err := registerTarget(dup, p, importContext{}, loc)

	assert.Nil(t, target)
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "Duplicate target: build", buildErr.Message)
	assert.Equal(t, loc, buildErr.Location)

	assert.Equal(t, before, p.Targets())
	assert.Equal(t, beforeNames, p.TargetNames())
	got, _ := p.Target("build")
	assert.Same(t, first, got)
	_, ok := p.Reference("dup")
	assert.False(t, ok)
}

func TestRegisterTarget_ImportedNewName(t *testing.T) {
	p, rec := newTestProject(t)

	target, err := registerTarget(spec("test"), p, importContext{importing: true, projectName: "lib"}, Location{})
	require.NoError(t, err)

	bare, _ := p.Target("test")
	qualified, _ := p.Target("lib.test")
	assert.Same(t, target, bare)
	assert.Same(t, target, qualified)
	assert.Equal(t, "test", target.Name(), "a target kept under its bare name keeps that name")
	assert.Equal(t, 1, rec.Count(project.MsgDebug, "Adding test as lib.test."))
}

func TestRegisterTarget_ImportedDuplicateIsQualified(t *testing.T) {
	p, rec := newTestProject(t)
	original, err := registerTarget(spec("build"), p, importContext{}, Location{})
	require.NoError(t, err)

	imported := spec("build")
	imported.id = "lib-build"
	target, err := registerTarget(imported, p, importContext{importing: true, projectName: "lib"}, Location{})
	require.NoError(t, err)

	bare, _ := p.Target("build")
	assert.Same(t, original, bare, "the first definition keeps the bare name")
	assert.Equal(t, "build", original.Name())

	qualified, ok := p.Target("lib.build")
	require.True(t, ok)
	assert.Same(t, target, qualified)
	assert.Equal(t, "lib.build", target.Name())

	ref, ok := p.Reference("lib-build")
	require.True(t, ok)
	assert.Same(t, target, ref)

	assert.Equal(t, 1, rec.Count(project.MsgVerbose, "Already defined in main or a previous import, ignore build"))
	assert.Equal(t, 1, rec.Count(project.MsgDebug, "Adding build as lib.build."))
}

func TestRegisterTarget_ImportedDuplicateWithoutProjectName(t *testing.T) {
	p, rec := newTestProject(t)
	_, err := registerTarget(spec("build"), p, importContext{}, Location{})
	require.NoError(t, err)
	before := p.TargetNames()

	imported := spec("build")
	imported.id = "ignored"
	target, err := registerTarget(imported, p, importContext{importing: true}, Location{})
	require.NoError(t, err)
	require.NotNil(t, target, "the handler still gets a target to attach children to")

	assert.Equal(t, before, p.TargetNames())
	_, ok := p.Reference("ignored")
	assert.False(t, ok, "a target that was not inserted is not referenced")
	assert.Equal(t, 1, rec.Count(project.MsgVerbose, "ignore build"))
}

func TestRegisterTarget_QualifiedNameAlreadyTaken(t *testing.T) {
	p, _ := newTestProject(t)
	_, err := registerTarget(spec("build"), p, importContext{}, Location{})
	require.NoError(t, err)
	_, err = registerTarget(spec("build"), p, importContext{importing: true, projectName: "lib"}, Location{})
	require.NoError(t, err)
	firstQualified, _ := p.Target("lib.build")

	again := spec("build")
	again.id = "again"
	target, err := registerTarget(again, p, importContext{importing: true, projectName: "lib"}, Location{})
	require.NoError(t, err)

	got, _ := p.Target("lib.build")
	assert.Same(t, firstQualified, got)
	assert.Equal(t, "build", target.Name(), "a target that was not inserted is not renamed")
	_, ok := p.Reference("again")
	assert.False(t, ok)
	assert.Equal(t, []string{"build", "lib.build"}, p.TargetNames())
}

func TestRegisterTarget_NotImportingIgnoresProjectName(t *testing.T) {
	p, _ := newTestProject(t)

	_, err := registerTarget(spec("build"), p, importContext{projectName: "main"}, Location{})
	require.NoError(t, err)

	assert.Equal(t, []string{"build"}, p.TargetNames())
}

func TestRegisterTarget_MalformedDepends(t *testing.T) {
	p, _ := newTestProject(t)
	s := spec("build")
	s.depends = "a,,b"
	s.id = "ref"

	_, err := registerTarget(s, p, importContext{}, Location{Line: 2})

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Contains(t, buildErr.Message, "Depend attribute for target build is malformed")
	assert.Empty(t, p.Targets())
	assert.Empty(t, p.References())
}

func TestRegisterTarget_SequenceOfImports(t *testing.T) {
	p, _ := newTestProject(t)
	steps := []struct {
		name string
		ic   importContext
	}{
		{"build", importContext{}},
		{"build", importContext{importing: true, projectName: "lib"}},
		{"build", importContext{importing: true, projectName: "tools"}},
		{"clean", importContext{importing: true, projectName: "tools"}},
	}
	for _, step := range steps {
		_, err := registerTarget(spec(step.name), p, step.ic, Location{})
		require.NoError(t, err)
	}

	names := map[string]string{}
	for key, target := range p.Targets() {
		names[key] = target.Name()
	}
	expected := map[string]string{
		"build":       "build",
		"lib.build":   "lib.build",
		"tools.build": "tools.build",
		"clean":       "clean",
		"tools.clean": "clean",
	}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Errorf("registered names mismatch (-want +got):\n%s", diff)
	}
}

var _ model.Container = (*model.Target)(nil)
