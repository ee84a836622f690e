// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Target entity.
//
// A Target is created once per <target> element and then lives as long as
// its project. Its name may be rewritten once, when an imported target is
// only reachable through its qualified "<project>.<name>" form.
package model

import (
	"fmt"
	"strings"
)

// Target is a named unit of build work with dependencies and owned tasks.
type Target struct {
	name        string
	dependsRaw  string
	deps        []string
	ifCond      string
	unlessCond  string
	description string
	hidden      bool
	logSkipped  bool
	children    []Element
}

// NewTarget creates an empty target with the given name.
func NewTarget(name string) *Target {
	return &Target{name: name}
}

func (t *Target) Name() string        { return t.name }
func (t *Target) SetName(name string) { t.name = name }

// SetDepends tokenises a comma separated dependency list and appends every
// entry to the dependency list. Entries are trimmed; an empty entry makes the
// whole list malformed and nothing is appended.
func (t *Target) SetDepends(depends string) error {
	parts := strings.Split(depends, ",")
	deps := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return fmt.Errorf("Syntax Error: Depend attribute for target %s is malformed.", t.name)
		}
		deps = append(deps, trimmed)
	}
	t.dependsRaw = depends
	t.deps = append(t.deps, deps...)
	return nil
}

// DependsRaw returns the depends attribute exactly as it was declared.
func (t *Target) DependsRaw() string { return t.dependsRaw }

// AddDependency appends a single dependency name.
func (t *Target) AddDependency(name string) { t.deps = append(t.deps, name) }

// Dependencies returns the dependency names in declaration order.
func (t *Target) Dependencies() []string {
	out := make([]string, len(t.deps))
	copy(out, t.deps)
	return out
}

func (t *Target) If() string                 { return t.ifCond }
func (t *Target) SetIf(cond string)          { t.ifCond = cond }
func (t *Target) Unless() string             { return t.unlessCond }
func (t *Target) SetUnless(cond string)      { t.unlessCond = cond }
func (t *Target) Description() string        { return t.description }
func (t *Target) SetDescription(desc string) { t.description = desc }
func (t *Target) Hidden() bool               { return t.hidden }
func (t *Target) SetHidden(hidden bool)      { t.hidden = hidden }
func (t *Target) LogSkipped() bool           { return t.logSkipped }
func (t *Target) SetLogSkipped(log bool)     { t.logSkipped = log }

// AddElement appends a task or datatype to the target. It implements
// Container so the element processor can bind children to the target.
func (t *Target) AddElement(child Element) error {
	if child == nil {
		return fmt.Errorf("target %q: cannot add a nil element", t.name)
	}
	t.children = append(t.children, child)
	return nil
}

// Tasks returns the owned tasks and datatypes in declaration order.
func (t *Target) Tasks() []Element {
	out := make([]Element, len(t.children))
	copy(out, t.children)
	return out
}

// String provides a simple representation for debugging.
func (t *Target) String() string {
	return fmt.Sprintf("Target(%s, deps: %v, tasks: %d)", t.name, t.deps, len(t.children))
}
