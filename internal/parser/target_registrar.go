package parser

import (
	"fmt"

	"github.com/specialistvlad/buildgrid/internal/model"
	"github.com/specialistvlad/buildgrid/internal/project"
)

// importContext is the part of the configurator state registration depends on.
type importContext struct {
	// importing is true while an imported file is parsed.
	importing bool
	// projectName is the name of the imported file's <project>, if any.
	projectName string
}

// registerTarget creates the target described by spec and registers it in
// p's target table.
//
// A bare name is taken by its first definition. Outside of an import a
// second definition is a BuildError; inside an import it is skipped. An
// imported target is additionally registered as "<projectName>.<name>"; when
// that qualified entry is its only entry the target is renamed to it. The
// id reference is recorded only for a target that was inserted somewhere.
//
// Every check precedes the first insertion, so a failed call leaves the
// target table untouched.
func registerTarget(spec *targetSpec, p *project.Project, ic importContext, loc Location) (*model.Target, error) {
	target := model.NewTarget(spec.name)
	target.SetHidden(spec.hidden)
	target.SetIf(spec.ifCond)
	target.SetUnless(spec.unlessCond)
	target.SetDescription(spec.description)
	target.SetLogSkipped(spec.logSkipped)
	if spec.depends != "" {
		if err := target.SetDepends(spec.depends); err != nil {
			return nil, wrapBuildError(loc, err)
		}
	}

	name := spec.name
	added := false

	if p.HasTarget(name) {
		if !ic.importing {
			return nil, NewBuildError(loc, "Duplicate target: %s", name)
		}
		p.Log(fmt.Sprintf("Already defined in main or a previous import, ignore %s", name), project.MsgVerbose)
	} else {
		if err := p.AddTarget(name, target); err != nil {
			return nil, wrapBuildError(loc, err)
		}
		added = true
	}

	if ic.importing && ic.projectName != "" {
		qualified := ic.projectName + "." + name
		if !p.HasTarget(qualified) {
			if !added {
				target.SetName(qualified)
			}
			p.Log(fmt.Sprintf("Adding %s as %s.", name, qualified), project.MsgDebug)
			if err := p.AddTarget(qualified, target); err != nil {
				return nil, wrapBuildError(loc, err)
			}
			added = true
		}
	}

	if added && spec.id != "" {
		p.AddReference(spec.id, target)
	}
	return target, nil
}
