package correspondence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/correspondence/visitor"
)

func TestStructure_Accessors(t *testing.T) {
	structure := newTestStructure(layout{{{"a", "b"}, {}}, {}, {{"c"}}})
	assert.Equal(t, 3, structure.Len())
	assert.Equal(t, 3, structure.Size())
	assert.Nil(t, structure.Node(-1))
	assert.Nil(t, structure.Node(3))

	node := structure.Node(0)
	require.NotNil(t, node)
	assert.Equal(t, 0, node.Index())
	assert.Equal(t, 0, node.Key())
	assert.Equal(t, 2, node.Len())
	assert.Nil(t, node.Group(2))

	group := node.Group(0)
	require.NotNil(t, group)
	assert.Equal(t, 2, group.Len())
	entry, ok := group.Entry(1)
	assert.True(t, ok)
	assert.Equal(t, "b", entry)
	_, ok = group.Entry(2)
	assert.False(t, ok)

	nodes, err := visitor.Collect(structure.Nodes())
	require.NoError(t, err)
	assert.Len(t, nodes, 3)
	groups, err := visitor.Collect(node.Groups())
	require.NoError(t, err)
	assert.Len(t, groups, 2)
	entries, err := visitor.Collect(group.Entries())
	require.NoError(t, err)
	assert.EqualValues(t, []string{"a", "b"}, entries)

	var empty *Structure[string]
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Size())
	assert.Nil(t, empty.Node(0))
	nodes, err = visitor.Collect(empty.Nodes())
	assert.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestStructure_Mutation(t *testing.T) {
	var testCases = []struct {
		description string
		mutate      func(s *Structure[string]) error
		expect      layout
		expectErr   error
	}{
		{
			description: "remove node",
			mutate:      func(s *Structure[string]) error { return s.RemoveNode(1) },
			expect:      layout{{{"a", "b"}}, {{"d"}}},
		},
		{
			description: "remove group",
			mutate:      func(s *Structure[string]) error { return s.Node(1).RemoveGroup(0) },
			expect:      layout{{{"a", "b"}}, {{}}, {{"d"}}},
		},
		{
			description: "remove entry",
			mutate:      func(s *Structure[string]) error { return s.Node(0).Group(0).Remove(0) },
			expect:      layout{{{"b"}}, {{"c"}, {}}, {{"d"}}},
		},
		{
			description: "add group",
			mutate: func(s *Structure[string]) error {
				s.Node(2).AddGroup("x").Append("e", "f")
				return nil
			},
			expect: layout{{{"a", "b"}}, {{"c"}, {}}, {{"d"}, {"e", "f"}}},
		},
		{
			description: "node out of range",
			mutate:      func(s *Structure[string]) error { return s.RemoveNode(3) },
			expectErr:   ErrIndexOutOfRange,
		},
		{
			description: "group out of range",
			mutate:      func(s *Structure[string]) error { return s.Node(0).RemoveGroup(-1) },
			expectErr:   ErrIndexOutOfRange,
		},
		{
			description: "entry out of range",
			mutate:      func(s *Structure[string]) error { return s.Node(1).Group(1).Remove(0) },
			expectErr:   ErrIndexOutOfRange,
		},
	}

	for _, testCase := range testCases {
		structure := newTestStructure(layout{{{"a", "b"}}, {{"c"}, {}}, {{"d"}}})
		generation := structure.Generation()
		err := testCase.mutate(structure)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			assert.Equal(t, generation, structure.Generation(), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Greater(t, structure.Generation(), generation, testCase.description)
		assert.EqualValues(t, testCase.expect, toLayout(structure), testCase.description)
	}
}

func TestStructure_RemoveReindexes(t *testing.T) {
	structure := newTestStructure(layout{{{"a"}}, {{"b"}, {"c"}, {"d"}}, {{"e"}}})
	removed := structure.Node(0)
	require.NoError(t, structure.RemoveNode(0))
	assert.Equal(t, 0, structure.Node(0).Index())
	assert.Equal(t, 1, structure.Node(1).Index())

	require.NoError(t, structure.Node(0).RemoveGroup(0))
	assert.Equal(t, 0, structure.Node(0).Group(0).Index())
	assert.Equal(t, 1, structure.Node(0).Group(1).Index())

	generation := structure.Generation()
	removed.AddGroup("detached").Append("x")
	assert.Equal(t, generation, structure.Generation())

	structure.Clear()
	assert.Equal(t, 0, structure.Len())
	assert.Greater(t, structure.Generation(), generation)
}

func toLayout(s *Structure[string]) layout {
	ret := layout{}
	for _, node := range s.nodes {
		groups := [][]string{}
		for _, group := range node.groups {
			entries := []string{}
			entries = append(entries, group.entries...)
			groups = append(groups, entries)
		}
		ret = append(ret, groups)
	}
	return ret
}
