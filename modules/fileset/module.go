package fileset

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gobwas/glob"
	"github.com/specialistvlad/buildgrid/internal/model"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// FileSet is the <fileset> datatype: a base directory plus include and
// exclude patterns.
type FileSet struct {
	Dir      string
	Includes []string
	Excludes []string

	patterns     []*Pattern
	includeGlobs []glob.Glob
	excludeGlobs []glob.Glob
}

// Pattern is a nested <include> or <exclude>.
type Pattern struct {
	kind string
	Name string
}

// ElementName implements model.Element.
func (p *Pattern) ElementName() string { return p.kind }

// SetAttribute implements model.Configurable.
func (p *Pattern) SetAttribute(name, value string) error {
	if name != "name" {
		return fmt.Errorf("doesn't support the '%s' attribute", name)
	}
	if _, err := compile(value); err != nil {
		return err
	}
	p.Name = value
	return nil
}

// Validate implements model.Validator.
func (p *Pattern) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name attribute is required")
	}
	return nil
}

// ElementName implements model.Element.
func (fs *FileSet) ElementName() string { return "fileset" }

// SetAttribute implements model.Configurable.
func (fs *FileSet) SetAttribute(name, value string) error {
	switch name {
	case "dir":
		fs.Dir = value
	case "includes":
		fs.Includes = append(fs.Includes, splitPatterns(value)...)
	case "excludes":
		fs.Excludes = append(fs.Excludes, splitPatterns(value)...)
	default:
		return fmt.Errorf("doesn't support the '%s' attribute", name)
	}
	return nil
}

// CreateElement implements model.NestedCreator.
func (fs *FileSet) CreateElement(name string) (model.Element, bool) {
	switch name {
	case "include", "exclude":
		return &Pattern{kind: name}, true
	default:
		return nil, false
	}
}

// AddElement implements model.Container. Only patterns created by
// CreateElement are accepted.
func (fs *FileSet) AddElement(child model.Element) error {
	p, ok := child.(*Pattern)
	if !ok {
		return fmt.Errorf("<fileset> does not support nested <%s>", child.ElementName())
	}
	fs.patterns = append(fs.patterns, p)
	return nil
}

// Validate implements model.Validator. Patterns are resolved once the
// fileset closes, after every nested pattern has been configured.
func (fs *FileSet) Validate() error {
	if fs.Dir == "" {
		return fmt.Errorf("dir attribute is required")
	}
	for _, p := range fs.patterns {
		if p.kind == "include" {
			fs.Includes = append(fs.Includes, p.Name)
		} else {
			fs.Excludes = append(fs.Excludes, p.Name)
		}
	}
	fs.patterns = nil

	var err error
	if fs.includeGlobs, err = compileAll(fs.Includes); err != nil {
		return err
	}
	if fs.excludeGlobs, err = compileAll(fs.Excludes); err != nil {
		return err
	}
	return nil
}

// Match reports whether rel, a slash or OS separated path relative to Dir,
// is selected by the fileset. With no includes every path is included;
// excludes always win. Only meaningful after Validate.
func (fs *FileSet) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, g := range fs.excludeGlobs {
		if g.Match(rel) {
			return false
		}
	}
	if len(fs.includeGlobs) == 0 {
		return true
	}
	for _, g := range fs.includeGlobs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// splitPatterns splits an includes/excludes list. Patterns are separated by
// commas and/or whitespace.
func splitPatterns(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// compile turns an ant style pattern into globs. "*" stops at "/", "**"
// crosses directories, "**/" also matches zero directories and a trailing
// "/" stands for "/**".
func compile(pattern string) ([]glob.Glob, error) {
	if strings.HasSuffix(pattern, "/") {
		pattern += "**"
	}
	var out []glob.Glob
	for _, variant := range expandDoubleStar(pattern) {
		g, err := glob.Compile(variant, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// expandDoubleStar returns pattern with every "**/" both kept and removed.
func expandDoubleStar(pattern string) []string {
	i := strings.Index(pattern, "**/")
	if i < 0 {
		return []string{pattern}
	}
	head := pattern[:i]
	var out []string
	for _, rest := range expandDoubleStar(pattern[i+3:]) {
		out = append(out, head+"**/"+rest, head+rest)
	}
	return out
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	var out []glob.Glob
	for _, p := range patterns {
		globs, err := compile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, globs...)
	}
	return out, nil
}
