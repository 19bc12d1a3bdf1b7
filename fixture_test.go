package synthview_test

import (
	"encoding/binary"
	"github.com/stretchr/testify/require"
	"github.com/viant/synthview/memory"
	"math"
	"testing"
)

type optionalInt struct {
	Initialized bool    `layout:"m_initialized"`
	Pad         [3]byte `layout:"-"`
	Storage     [4]byte `layout:"m_storage"`
}

type smallVectorHolder struct {
	Start    uint64 `layout:"m_start,pointer"`
	Size     uint64 `layout:"m_size"`
	Capacity uint64 `layout:"m_capacity"`
}

type smallVectorInt struct {
	Holder  smallVectorHolder `layout:"m_holder,type=boost::container::vector_alloc_holder"`
	Storage [16]byte          `layout:"m_storage"`
}

type variantStorage struct {
	Which   int32   `layout:"which_"`
	Pad     [4]byte `layout:"-"`
	Storage [8]byte `layout:"storage_"`
}

type multiIndexContainer struct {
	Header    uint64 `layout:"header,pointer"`
	NodeCount uint64 `layout:"node_count"`
}

const (
	optionalAddress    = 0x1000
	smallVectorAddress = 0x2000
	heapAddress        = 0x8000
	variantAddress     = 0x3000
	multiIndexAddress  = 0x4000
)

func optionalType(t *testing.T) *memory.Type {
	ret, err := memory.StructOf("boost::optional", optionalInt{}, memory.Int)
	require.NoError(t, err)
	return ret
}

func smallVectorType(t *testing.T) *memory.Type {
	ret, err := memory.StructOf("boost::container::small_vector", smallVectorInt{}, memory.Int)
	require.NoError(t, err)
	return ret
}

func variantType(t *testing.T) *memory.Type {
	ret, err := memory.StructOf("boost::variant", variantStorage{}, memory.Int, memory.Double)
	require.NoError(t, err)
	return ret
}

func multiIndexType(t *testing.T) *memory.Type {
	ret, err := memory.StructOf("boost::multi_index::multi_index_container", multiIndexContainer{}, memory.Int)
	require.NoError(t, err)
	return ret
}

func newOptional(t *testing.T, initialized bool, value int32) *memory.Value {
	space := memory.NewSpace()
	instance := &optionalInt{Initialized: initialized}
	binary.LittleEndian.PutUint32(instance.Storage[:], uint32(value))
	require.NoError(t, space.MapValue(optionalAddress, instance))
	return space.Variable("opt", optionalAddress, optionalType(t))
}

// newInlineSmallVector maps vector with elements stored in the inline buffer
func newInlineSmallVector(t *testing.T, elements ...int32) *memory.Value {
	require.True(t, len(elements) <= 4)
	space := memory.NewSpace()
	instance := &smallVectorInt{}
	instance.Holder.Start = smallVectorAddress + 24
	instance.Holder.Size = uint64(len(elements))
	instance.Holder.Capacity = 4
	for i, element := range elements {
		binary.LittleEndian.PutUint32(instance.Storage[i*4:], uint32(element))
	}
	require.NoError(t, space.MapValue(smallVectorAddress, instance))
	return space.Variable("vec", smallVectorAddress, smallVectorType(t))
}

// newSpilledSmallVector maps vector with elements moved to heap
func newSpilledSmallVector(t *testing.T, elements ...int32) *memory.Value {
	space := memory.NewSpace()
	instance := &smallVectorInt{}
	instance.Holder.Start = heapAddress
	instance.Holder.Size = uint64(len(elements))
	instance.Holder.Capacity = uint64(len(elements))
	require.NoError(t, space.MapValue(smallVectorAddress, instance))
	heap := make([]byte, 4*len(elements))
	for i, element := range elements {
		binary.LittleEndian.PutUint32(heap[i*4:], uint32(element))
	}
	require.NoError(t, space.Map(heapAddress, heap))
	return space.Variable("vec", smallVectorAddress, smallVectorType(t))
}

func newVariant(t *testing.T, which int32, storage uint64) *memory.Value {
	space := memory.NewSpace()
	instance := &variantStorage{Which: which}
	binary.LittleEndian.PutUint64(instance.Storage[:], storage)
	require.NoError(t, space.MapValue(variantAddress, instance))
	return space.Variable("var", variantAddress, variantType(t))
}

func newDoubleVariant(t *testing.T, value float64) *memory.Value {
	return newVariant(t, 1, math.Float64bits(value))
}

func newMultiIndex(t *testing.T, nodeCount uint64) *memory.Value {
	space := memory.NewSpace()
	require.NoError(t, space.MapValue(multiIndexAddress, &multiIndexContainer{Header: 0x9000, NodeCount: nodeCount}))
	return space.Variable("set", multiIndexAddress, multiIndexType(t))
}

func interfaceOf(t *testing.T, value interface{}) interface{} {
	memValue, ok := value.(*memory.Value)
	require.True(t, ok)
	ret, err := memValue.Interface()
	require.NoError(t, err)
	return ret
}
