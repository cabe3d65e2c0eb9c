package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSelectedPathEncodingRoundTrip(t *testing.T) {
	paths := []string{"docs", "src/main.go", "a b/c", "deep/nested/dir"}

	for _, path := range paths {
		for _, recursive := range []bool{true, false} {
			p := SelectedPath{Path: path, Recursive: recursive}
			assert.Equal(t, p, ParsePath(p.String()), "round trip for %q recursive=%v", path, recursive)
		}
	}
}

func TestSelectedPathEncoding(t *testing.T) {
	assert.Equal(t, "docs", SelectedPath{Path: "docs", Recursive: true}.String())
	assert.Equal(t, "*docs", SelectedPath{Path: "docs", Recursive: false}.String())

	assert.Equal(t, SelectedPath{Path: "docs", Recursive: true}, ParsePath("docs"))
	assert.Equal(t, SelectedPath{Path: "docs", Recursive: false}, ParsePath("*docs"))
}

func TestSelectionSetSemantics(t *testing.T) {
	s := New()
	s.Add(SelectedPath{Path: "docs", Recursive: true})
	s.Add(SelectedPath{Path: "docs", Recursive: true})
	assert.Equal(t, 1, s.Len())

	// Same path, different flag is a distinct entry.
	s.Add(SelectedPath{Path: "docs", Recursive: false})
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.ContainsPath("docs"))
	assert.False(t, s.ContainsPath("src"))
}

func TestSelectionSortedOrder(t *testing.T) {
	s := New(
		SelectedPath{Path: "zeta", Recursive: true},
		SelectedPath{Path: "alpha", Recursive: false},
		SelectedPath{Path: "beta", Recursive: true},
	)

	var encoded []string
	for _, p := range s.Sorted() {
		encoded = append(encoded, p.String())
	}
	// '*' sorts before letters, so non-recursive entries lead.
	assert.Equal(t, []string{"*alpha", "beta", "zeta"}, encoded)
}

func TestSelectionMergeDoesNotUpgradeNonRecursive(t *testing.T) {
	s := New(SelectedPath{Path: "docs", Recursive: false})

	s.Merge([]string{"docs", "src"})

	assert.True(t, s.Contains(SelectedPath{Path: "docs", Recursive: false}))
	assert.False(t, s.Contains(SelectedPath{Path: "docs", Recursive: true}),
		"rediscovery must not upgrade a non-recursive entry")
	assert.True(t, s.Contains(SelectedPath{Path: "src", Recursive: true}))
}

func TestSelectionEqual(t *testing.T) {
	a := New(SelectedPath{Path: "docs", Recursive: true}, SelectedPath{Path: "src", Recursive: false})
	b := New(SelectedPath{Path: "src", Recursive: false}, SelectedPath{Path: "docs", Recursive: true})
	c := New(SelectedPath{Path: "docs", Recursive: false})

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.True(t, New().Equal(New()))
}

func TestSelectionYAMLRoundTrip(t *testing.T) {
	s := New(
		SelectedPath{Path: "docs", Recursive: false},
		SelectedPath{Path: "src", Recursive: true},
	)

	data, err := yaml.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "- '*docs'\n- src\n", string(data))

	var decoded Selection
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.True(t, s.Equal(&decoded))
}
