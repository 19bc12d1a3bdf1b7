package synthview_test

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/synthview"
	"github.com/viant/synthview/memory"
	"testing"
)

func TestSmallVector_Children(t *testing.T) {
	var testCases = []struct {
		description string
		value       func(t *testing.T) *memory.Value
		start       uint64
		expect      []int32
	}{
		{
			description: "inline storage",
			value: func(t *testing.T) *memory.Value {
				return newInlineSmallVector(t, 10, 20, 30)
			},
			start:  smallVectorAddress + 24,
			expect: []int32{10, 20, 30},
		},
		{
			description: "heap storage",
			value: func(t *testing.T) *memory.Value {
				return newSpilledSmallVector(t, 1, 2, 3, 4, 5, 6)
			},
			start:  heapAddress,
			expect: []int32{1, 2, 3, 4, 5, 6},
		},
		{
			description: "empty",
			value: func(t *testing.T) *memory.Value {
				return newInlineSmallVector(t)
			},
			start: smallVectorAddress + 24,
		},
	}

	for _, testCase := range testCases {
		provider := synthview.NewSmallVector(testCase.value(t))
		count, err := provider.NumChildren()
		require.NoError(t, err, testCase.description)
		assert.Equal(t, len(testCase.expect), count, testCase.description)
		assert.True(t, provider.HasChildren(), testCase.description)

		var actual []int32
		for i := 0; i < count; i++ {
			child, err := provider.ChildAt(i)
			if !assert.NoError(t, err, testCase.description) {
				break
			}
			assert.Equal(t, synthview.IndexName(i), child.Name(), testCase.description)
			assert.Equal(t, "int", child.Type().Name(), testCase.description)
			address, ok := child.(*memory.Value).Address()
			assert.True(t, ok, testCase.description)
			assert.EqualValues(t, testCase.start+uint64(i)*4, address, testCase.description)
			actual = append(actual, interfaceOf(t, child).(int32))
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)

		_, err = provider.ChildAt(count)
		assert.True(t, errors.Is(err, synthview.ErrIndexOutOfRange), testCase.description)
		_, err = provider.ChildAt(-1)
		assert.True(t, errors.Is(err, synthview.ErrIndexOutOfRange), testCase.description)
	}
}

func TestSmallVector_SecondElement(t *testing.T) {
	provider := synthview.NewSmallVector(newInlineSmallVector(t, 10, 20, 30))
	child, err := provider.ChildAt(1)
	require.NoError(t, err)
	assert.Equal(t, "[1]", child.Name())
	assert.Equal(t, int32(20), interfaceOf(t, child))
	summary, err := child.Summary()
	require.NoError(t, err)
	assert.Equal(t, "20", summary)
}

func TestSmallVector_ChildIndex(t *testing.T) {
	provider := synthview.NewSmallVector(newInlineSmallVector(t, 1))
	assert.Equal(t, 0, provider.ChildIndex("[0]"))
	assert.Equal(t, 12, provider.ChildIndex("[12]"))
	assert.Equal(t, -1, provider.ChildIndex("val"))
	assert.Equal(t, -1, provider.ChildIndex("[-1]"))
	assert.Equal(t, -1, provider.ChildIndex("[x]"))
}

func TestSmallVector_Errors(t *testing.T) {
	space := memory.NewSpace()
	require.NoError(t, space.MapValue(smallVectorAddress, &smallVectorInt{Holder: smallVectorHolder{Start: heapAddress, Size: 2}}))
	provider := synthview.NewSmallVector(space.Variable("vec", smallVectorAddress, smallVectorType(t)))
	count, err := provider.NumChildren()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	child, err := provider.ChildAt(0)
	require.NoError(t, err, "element memory is read on demand")
	_, err = child.Summary()
	assert.True(t, errors.Is(err, memory.ErrUnmapped))

	mismatched := synthview.NewSmallVector(newOptional(t, true, 1))
	_, err = mismatched.NumChildren()
	assert.True(t, errors.Is(err, memory.ErrNoSuchMember))
}

func TestSmallVector_InvalidSize(t *testing.T) {
	var testCases = []struct {
		description string
		size        uint64
	}{
		{description: "sign bit set", size: 1 << 63},
		{description: "all bits set", size: ^uint64(0)},
	}
	for _, testCase := range testCases {
		space := memory.NewSpace()
		instance := &smallVectorInt{Holder: smallVectorHolder{Start: smallVectorAddress + 24, Size: testCase.size}}
		require.NoError(t, space.MapValue(smallVectorAddress, instance), testCase.description)
		provider := synthview.NewSmallVector(space.Variable("vec", smallVectorAddress, smallVectorType(t)))

		count, err := provider.NumChildren()
		assert.True(t, errors.Is(err, synthview.ErrInvalidCount), testCase.description)
		assert.Equal(t, 0, count, testCase.description)
		_, err = provider.ChildAt(0)
		assert.True(t, errors.Is(err, synthview.ErrInvalidCount), testCase.description)
	}
}
