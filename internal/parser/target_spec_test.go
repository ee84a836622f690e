package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTargetSpec_AllAttributes(t *testing.T) {
	attrs := Attributes{
		{"name", "build"},
		{"depends", "a,b"},
		{"if", "do.build"},
		{"unless", "skip.build"},
		{"id", "build-ref"},
		{"hidden", "true"},
		{"description", "Builds everything"},
		{"logskipped", "yes"},
	}

	spec, err := decodeTargetSpec(attrs, Location{})
	require.NoError(t, err)

	assert.Equal(t, &targetSpec{
		name:        "build",
		hasName:     true,
		depends:     "a,b",
		ifCond:      "do.build",
		unlessCond:  "skip.build",
		id:          "build-ref",
		hidden:      true,
		description: "Builds everything",
		logSkipped:  true,
	}, spec)
}

func TestDecodeTargetSpec_Defaults(t *testing.T) {
	spec, err := decodeTargetSpec(Attributes{{"name", "build"}}, Location{})
	require.NoError(t, err)

	assert.Equal(t, "", spec.depends)
	assert.False(t, spec.hidden)
	assert.False(t, spec.logSkipped)
	assert.Empty(t, spec.id)
}

func TestDecodeTargetSpec_UnknownAttribute(t *testing.T) {
	loc := Location{File: "build.xml", Line: 3, Column: 5}
	for _, value := range []string{"", "x", "true"} {
		_, err := decodeTargetSpec(Attributes{{"name", "build"}, {"dependz", value}}, loc)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "value %q", value)
		assert.Equal(t, "Unexpected attribute 'dependz'", parseErr.Message)
		assert.Equal(t, loc, parseErr.Location)
	}
}

func TestDecodeTargetSpec_UnknownAttributeBeforeMissingName(t *testing.T) {
	_, err := decodeTargetSpec(Attributes{{"bogus", "1"}}, Location{})

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Unexpected attribute 'bogus'", parseErr.Message)
}

func TestDecodeTargetSpec_MissingName(t *testing.T) {
	spec, err := decodeTargetSpec(Attributes{{"depends", "a"}}, Location{Line: 7})

	assert.Nil(t, spec)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "target element appears without a name attribute", parseErr.Message)
	assert.Equal(t, 7, parseErr.Location.Line)
}

func TestDecodeTargetSpec_Hidden(t *testing.T) {
	testCases := map[string]bool{
		"true":     true,
		"1":        true,
		"false":    false,
		"0":        false,
		"anything": false,
		"TRUE":     false,
		"yes":      false,
	}

	for value, expected := range testCases {
		spec, err := decodeTargetSpec(Attributes{{"name", "t"}, {"hidden", value}}, Location{})
		require.NoError(t, err)
		assert.Equal(t, expected, spec.hidden, "hidden=%q", value)
	}
}

func TestDecodeTargetSpec_LogSkipped(t *testing.T) {
	testCases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		" yes ": true,
		"on":    true,
		"t":     true,
		"1":     true,
		"false": false,
		"off":   false,
		"0":     false,
		"":      false,
		"maybe": false,
	}

	for value, expected := range testCases {
		spec, err := decodeTargetSpec(Attributes{{"name", "t"}, {"logskipped", value}}, Location{})
		require.NoError(t, err)
		assert.Equal(t, expected, spec.logSkipped, "logskipped=%q", value)
	}
}

func TestDecodeTargetSpec_DependsIsNotTokenised(t *testing.T) {
	spec, err := decodeTargetSpec(Attributes{{"name", "t"}, {"depends", " a , b "}}, Location{})
	require.NoError(t, err)
	assert.Equal(t, " a , b ", spec.depends)
}
