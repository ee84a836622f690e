package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubElement struct{ name string }

func (s *stubElement) ElementName() string { return s.name }

func TestTarget_SetDepends(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"single", "compile", []string{"compile"}},
		{"list", "a,b", []string{"a", "b"}},
		{"whitespace is trimmed", " a ,\tb , c", []string{"a", "b", "c"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target := NewTarget("build")
			require.NoError(t, target.SetDepends(tc.raw))
			assert.Equal(t, tc.expected, target.Dependencies())
			assert.Equal(t, tc.raw, target.DependsRaw())
		})
	}
}

func TestTarget_SetDependsRejectsEmptyEntries(t *testing.T) {
	for _, raw := range []string{"a,,b", "a,", ",a", " , "} {
		target := NewTarget("build")
		err := target.SetDepends(raw)
		require.Error(t, err, "depends=%q", raw)
		assert.Contains(t, err.Error(), "Depend attribute for target build is malformed")
		assert.Empty(t, target.Dependencies(), "a malformed list must not be partially applied")
	}
}

func TestTarget_Children(t *testing.T) {
	target := NewTarget("build")
	require.NoError(t, target.AddElement(&stubElement{name: "echo"}))
	require.NoError(t, target.AddElement(&stubElement{name: "fileset"}))
	require.Error(t, target.AddElement(nil))

	tasks := target.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "echo", tasks[0].ElementName())
	assert.Equal(t, "fileset", tasks[1].ElementName())

	// Tasks hands out a copy.
	tasks[0] = nil
	assert.NotNil(t, target.Tasks()[0])
}

func TestTarget_Rename(t *testing.T) {
	target := NewTarget("build")
	target.SetName("lib.build")
	assert.Equal(t, "lib.build", target.Name())
}
