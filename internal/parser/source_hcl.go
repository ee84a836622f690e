package parser

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclSource turns an HCL build file into engine events. Every block is an
// element named after its type; a single block label becomes the "name"
// attribute, so
//
//	target "build" {
//	  depends = ["compile", "test"]
//	}
//
// is read exactly like <target name="build" depends="compile,test"/>.
type hclSource struct {
	events []event
}

func newHCLSource(file string, src []byte) (*hclSource, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, file)
	if diags.HasErrors() {
		return nil, diagsToParseError(file, diags)
	}

	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return nil, NewParseError(Location{File: file}, "HCL build files must use native syntax")
	}
	if len(body.Attributes) > 0 {
		attr := sortedAttributes(body.Attributes)[0]
		return nil, NewParseError(rangeLocation(attr.SrcRange), "Unexpected top-level attribute '%s'", attr.Name)
	}

	s := &hclSource{}
	for _, block := range body.Blocks {
		if err := s.walk(block); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *hclSource) next() (event, error) {
	if len(s.events) == 0 {
		return event{}, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func (s *hclSource) walk(block *hclsyntax.Block) error {
	start := rangeLocation(block.TypeRange)

	var attrs Attributes
	switch len(block.Labels) {
	case 0:
	case 1:
		attrs = append(attrs, Attr{Name: "name", Value: block.Labels[0]})
	default:
		return NewParseError(rangeLocation(block.LabelRanges[1]), "Block %q accepts at most one label", block.Type)
	}

	for _, attr := range sortedAttributes(block.Body.Attributes) {
		if attr.Name == "name" && len(block.Labels) == 1 {
			return NewParseError(rangeLocation(attr.SrcRange), "Block %q sets its name both as label and attribute", block.Type)
		}
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diagsToParseError(start.File, diags)
		}
		str, err := ctyToString(value)
		if err != nil {
			return &ParseError{
				Message:  fmt.Sprintf("Attribute '%s' cannot be used as text: %v", attr.Name, err),
				Location: rangeLocation(attr.SrcRange),
				Err:      err,
			}
		}
		attrs = append(attrs, Attr{Name: attr.Name, Value: str})
	}

	s.events = append(s.events, event{kind: startEvent, name: block.Type, attrs: attrs, loc: start})
	for _, child := range block.Body.Blocks {
		if err := s.walk(child); err != nil {
			return err
		}
	}
	s.events = append(s.events, event{kind: endEvent, name: block.Type, loc: rangeLocation(block.CloseBraceRange)})
	return nil
}

// sortedAttributes returns the attributes of a body in source order.
func sortedAttributes(attrs hclsyntax.Attributes) []*hclsyntax.Attribute {
	out := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SrcRange.Start.Byte < out[j].SrcRange.Start.Byte
	})
	return out
}

// ctyToString renders a static attribute value as attribute text. Lists,
// sets and tuples of primitives are joined with commas.
func ctyToString(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	if !v.IsWhollyKnown() {
		return "", errors.New("value is not known statically")
	}

	ty := v.Type()
	if ty.IsListType() || ty.IsSetType() || ty.IsTupleType() {
		parts := make([]string, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, el := it.Element()
			if !el.Type().IsPrimitiveType() {
				return "", fmt.Errorf("nested %s values are not supported", el.Type().FriendlyName())
			}
			part, err := ctyToString(el)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
		return strings.Join(parts, ","), nil
	}

	sv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", err
	}
	var out string
	if err := gocty.FromCtyValue(sv, &out); err != nil {
		return "", err
	}
	return out, nil
}

func rangeLocation(r hcl.Range) Location {
	return Location{File: r.Filename, Line: r.Start.Line, Column: r.Start.Column}
}

func diagsToParseError(file string, diags hcl.Diagnostics) *ParseError {
	loc := Location{File: file}
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			loc = rangeLocation(*d.Subject)
			break
		}
	}
	return &ParseError{Message: diags.Error(), Location: loc, Err: diags}
}
