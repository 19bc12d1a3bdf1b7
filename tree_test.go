package synthview_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/synthview"
	"github.com/viant/synthview/memory"
	"testing"
)

func TestRegistry_Expand(t *testing.T) {
	registry := synthview.NewRegistry(synthview.WithMaxChildren(2))
	require.NoError(t, synthview.Register(registry))

	var testCases = []struct {
		description string
		value       func(t *testing.T) synthview.Value
		depth       int
		expect      *synthview.Node
	}{
		{
			description: "optional payload",
			value:       func(t *testing.T) synthview.Value { return newOptional(t, true, 42) },
			depth:       1,
			expect: &synthview.Node{Name: "opt", Type: "boost::optional<int>", Synthetic: true, Count: 1, Children: []*synthview.Node{
				{Name: "val", Type: "int", Summary: "42"},
			}},
		},
		{
			description: "empty optional",
			value:       func(t *testing.T) synthview.Value { return newOptional(t, false, 0) },
			depth:       1,
			expect: &synthview.Node{Name: "opt", Type: "boost::optional<int>", Synthetic: true, Count: 1, Children: []*synthview.Node{
				{Name: "val", Type: "const char*", Summary: "none"},
			}},
		},
		{
			description: "depth zero",
			value:       func(t *testing.T) synthview.Value { return newOptional(t, true, 42) },
			depth:       0,
			expect:      &synthview.Node{Name: "opt", Type: "boost::optional<int>", Synthetic: true, Count: 1},
		},
		{
			description: "truncated vector",
			value:       func(t *testing.T) synthview.Value { return newInlineSmallVector(t, 10, 20, 30) },
			depth:       1,
			expect: &synthview.Node{Name: "vec", Type: "boost::container::small_vector<int>", Synthetic: true, Count: 3, Children: []*synthview.Node{
				{Name: "[0]", Type: "int", Summary: "10"},
				{Name: "[1]", Type: "int", Summary: "20"},
			}},
		},
		{
			description: "scalar",
			value: func(t *testing.T) synthview.Value {
				space := memory.NewSpace()
				value := int32(5)
				require.NoError(t, space.MapValue(0x10, &value))
				return space.Variable("i", 0x10, memory.Int)
			},
			depth:  1,
			expect: &synthview.Node{Name: "i", Type: "int", Summary: "5"},
		},
	}
	for _, testCase := range testCases {
		actual := registry.Expand(testCase.value(t), testCase.depth)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestRegistry_ExpandDegradesFailedNode(t *testing.T) {
	registry := synthview.NewRegistry()
	require.NoError(t, synthview.Register(registry))

	space := memory.NewSpace()
	require.NoError(t, space.MapValue(smallVectorAddress, &smallVectorInt{Holder: smallVectorHolder{Start: heapAddress, Size: 2}}))
	node := registry.Expand(space.Variable("vec", smallVectorAddress, smallVectorType(t)), 1)
	assert.Equal(t, "", node.Error)
	require.Len(t, node.Children, 2)
	for _, child := range node.Children {
		assert.NotEmpty(t, child.Error)
	}

	unmapped := registry.Expand(space.Variable("opt", 0x7000, optionalType(t)), 1)
	assert.True(t, unmapped.Synthetic)
	require.Len(t, unmapped.Children, 1)
	assert.Equal(t, "[0]", unmapped.Children[0].Name)
	assert.NotEmpty(t, unmapped.Children[0].Error)
}

func TestNode_Truncated(t *testing.T) {
	registry := synthview.NewRegistry(synthview.WithMaxChildren(3))
	require.NoError(t, synthview.Register(registry))
	node := registry.Expand(newMultiIndex(t, 10), 1)
	assert.True(t, node.Truncated())
	assert.Len(t, node.Children, 3)
	for _, child := range node.Children {
		assert.Equal(t, synthview.Dummy, child.Summary)
	}
}
