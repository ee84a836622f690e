package parser

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func collectEvents(t *testing.T, src eventSource) []event {
	t.Helper()

	var out []event
	for {
		ev, err := src.next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, ev)
	}
}

func TestHCLSource_Events(t *testing.T) {
	src, err := newHCLSource("build.hcl", []byte(`
project "demo" {
  default = "build"
  target "build" {
    unless  = "skip"
    depends = ["a", "b"]
    echo {
      message = "hi"
    }
  }
}
`))
	require.NoError(t, err)

	events := collectEvents(t, src)
	require.Len(t, events, 6)

	assert.Equal(t, startEvent, events[0].kind)
	assert.Equal(t, "project", events[0].name)
	assert.Equal(t, Attributes{{"name", "demo"}, {"default", "build"}}, events[0].attrs)
	assert.Equal(t, Location{File: "build.hcl", Line: 2, Column: 1}, events[0].loc)

	assert.Equal(t, "target", events[1].name)
	assert.Equal(t, Attributes{{"name", "build"}, {"unless", "skip"}, {"depends", "a,b"}}, events[1].attrs,
		"attributes keep their source order")

	assert.Equal(t, "echo", events[2].name)
	assert.Equal(t, Attributes{{"message", "hi"}}, events[2].attrs)

	for i, name := range []string{"echo", "target", "project"} {
		assert.Equal(t, endEvent, events[3+i].kind)
		assert.Equal(t, name, events[3+i].name)
	}
}

func TestHCLSource_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		message string
	}{
		{"syntax", `project "x" {`, ""},
		{"two labels", `project "a" "b" {}`, `Block "project" accepts at most one label`},
		{"top level attribute", "x = 1\nproject {}", "Unexpected top-level attribute 'x'"},
		{"label and name", `project "a" { name = "b" }`, `Block "project" sets its name both as label and attribute`},
		{"variable reference", `project { default = var.x }`, ""},
		{"object value", `project { default = { a = 1 } }`, "Attribute 'default' cannot be used as text"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newHCLSource("build.hcl", []byte(tc.src))

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "build.hcl", parseErr.Location.File)
			if tc.message != "" {
				assert.Contains(t, parseErr.Message, tc.message)
			}
		})
	}
}

func TestCtyToString(t *testing.T) {
	testCases := []struct {
		name     string
		value    cty.Value
		expected string
	}{
		{"string", cty.StringVal("x"), "x"},
		{"bool", cty.True, "true"},
		{"int", cty.NumberIntVal(3), "3"},
		{"null", cty.NullVal(cty.String), ""},
		{"tuple", cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1)}), "a,1"},
		{"list", cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), "a,b"},
		{"empty tuple", cty.EmptyTupleVal, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ctyToString(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCtyToString_Rejects(t *testing.T) {
	_, err := ctyToString(cty.UnknownVal(cty.String))
	assert.Error(t, err)

	_, err = ctyToString(cty.TupleVal([]cty.Value{cty.ListValEmpty(cty.String)}))
	assert.Error(t, err)

	_, err = ctyToString(cty.ObjectVal(map[string]cty.Value{"a": cty.StringVal("b")}))
	assert.Error(t, err)
}
