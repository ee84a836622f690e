package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/buildgrid/internal/model"
	"github.com/specialistvlad/buildgrid/internal/project"
)

// rootHandler accepts the single <project> element of a document.
type rootHandler struct {
	cfg  *Configurator
	seen bool
}

func (h *rootHandler) StartElement(name string, attrs Attributes) (Handler, error) {
	if name != "project" {
		return nil, NewParseError(h.cfg.Location(), "Unexpected root element <%s>, expected <project>", name)
	}
	if h.seen {
		return nil, NewParseError(h.cfg.Location(), "Only one <project> element is allowed per file")
	}
	h.seen = true

	ph := &projectHandler{cfg: h.cfg}
	if err := ph.Init(attrs); err != nil {
		return nil, err
	}
	return ph, nil
}

func (h *rootHandler) Characters(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return NewParseError(h.cfg.Location(), "Unexpected text outside of <project>")
}

func (h *rootHandler) Finished() error { return nil }

// projectHandler handles <project> and its direct children.
type projectHandler struct {
	cfg *Configurator
}

// Init applies the project attributes. While an imported file is parsed
// only the name is used, as the enclosing project name of its targets.
func (h *projectHandler) Init(attrs Attributes) error {
	var name, def, desc, baseDir string
	for _, attr := range attrs {
		switch attr.Name {
		case "name":
			name = attr.Value
		case "default":
			def = attr.Value
		case "description":
			desc = attr.Value
		case "basedir":
			baseDir = attr.Value
		default:
			return NewParseError(h.cfg.Location(), "Unexpected attribute '%s'", attr.Name)
		}
	}

	h.cfg.SetCurrentProjectName(name)
	if h.cfg.IsIgnoringProjectTag() {
		return nil
	}

	p := h.cfg.Project()
	p.SetName(name)
	p.SetDefaultTarget(def)
	if desc != "" {
		p.SetDescription(desc)
	}
	p.SetBaseDir(resolveBaseDir(h.cfg.currentFile, baseDir))
	return nil
}

func (h *projectHandler) StartElement(name string, attrs Attributes) (Handler, error) {
	switch name {
	case "target":
		th := newTargetHandler(h.cfg)
		if err := th.Init(name, attrs); err != nil {
			return nil, err
		}
		return th, nil
	case "import":
		if err := h.handleImport(attrs); err != nil {
			return nil, err
		}
		return &emptyHandler{tag: name, loc: h.cfg}, nil
	case "description":
		return &descriptionHandler{cfg: h.cfg}, nil
	default:
		p := h.cfg.Project()
		return h.cfg.processor.Process(p.ImplicitTarget(), name, attrs, p.DataTypeDefinitions())
	}
}

func (h *projectHandler) Characters(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return NewParseError(h.cfg.Location(), "Unexpected text inside <project>")
}

func (h *projectHandler) Finished() error {
	h.cfg.Project().Log(fmt.Sprintf("Finished parsing %s", h.cfg.currentFile), project.MsgDebug)
	return nil
}

func (h *projectHandler) handleImport(attrs Attributes) error {
	var file string
	var optional bool
	for _, attr := range attrs {
		switch attr.Name {
		case "file":
			file = attr.Value
		case "optional":
			optional = model.BooleanValue(attr.Value)
		default:
			return NewParseError(h.cfg.Location(), "Unexpected attribute '%s'", attr.Name)
		}
	}
	if file == "" {
		return NewParseError(h.cfg.Location(), "import requires a file attribute")
	}
	return h.cfg.Import(file, optional)
}

// descriptionHandler collects the text of a top-level <description>.
type descriptionHandler struct {
	cfg  *Configurator
	text strings.Builder
}

func (h *descriptionHandler) StartElement(name string, _ Attributes) (Handler, error) {
	return nil, NewParseError(h.cfg.Location(), "<description> does not support nested element <%s>", name)
}

func (h *descriptionHandler) Characters(text string) error {
	h.text.WriteString(text)
	return nil
}

func (h *descriptionHandler) Finished() error {
	if h.cfg.IsIgnoringProjectTag() {
		return nil
	}
	h.cfg.Project().SetDescription(strings.TrimSpace(h.text.String()))
	return nil
}

// resolveBaseDir anchors a relative basedir at the build file's directory.
func resolveBaseDir(buildFile, baseDir string) string {
	dir := filepath.Dir(buildFile)
	if baseDir == "" {
		return dir
	}
	if filepath.IsAbs(baseDir) {
		return filepath.Clean(baseDir)
	}
	return filepath.Join(dir, baseDir)
}
