package parser

import "github.com/specialistvlad/buildgrid/internal/model"

// targetSpec is the decoded form of a <target> tag. It only lives for the
// duration of one TargetHandler.Init call.
type targetSpec struct {
	name        string
	hasName     bool
	depends     string
	ifCond      string
	unlessCond  string
	id          string
	hidden      bool
	description string
	logSkipped  bool
}

// targetAttributes maps every attribute a <target> accepts to its setter.
var targetAttributes = map[string]func(s *targetSpec, value string){
	"name": func(s *targetSpec, v string) {
		s.name = v
		s.hasName = true
	},
	"depends":     func(s *targetSpec, v string) { s.depends = v },
	"if":          func(s *targetSpec, v string) { s.ifCond = v },
	"unless":      func(s *targetSpec, v string) { s.unlessCond = v },
	"id":          func(s *targetSpec, v string) { s.id = v },
	"hidden":      func(s *targetSpec, v string) { s.hidden = v == "true" || v == "1" },
	"description": func(s *targetSpec, v string) { s.description = v },
	"logskipped":  func(s *targetSpec, v string) { s.logSkipped = model.BooleanValue(v) },
}

// decodeTargetSpec validates and decodes the attributes of a <target> tag.
// The first unknown attribute, or a missing name, fails the whole decode.
func decodeTargetSpec(attrs Attributes, loc Location) (*targetSpec, error) {
	spec := &targetSpec{}
	for _, attr := range attrs {
		set, ok := targetAttributes[attr.Name]
		if !ok {
			return nil, NewParseError(loc, "Unexpected attribute '%s'", attr.Name)
		}
		set(spec, attr.Value)
	}

	if !spec.hasName {
		return nil, NewParseError(loc, "target element appears without a name attribute")
	}
	return spec, nil
}
