package memory

import (
	"fmt"
	"github.com/viant/xunsafe"
	"reflect"
	"sort"
	"sync"
	"unsafe"
)

type (
	segment struct {
		address uint64
		data    []byte
	}

	//Space represents read-only target address space
	Space struct {
		mux      sync.RWMutex
		segments []*segment
	}
)

func (s *segment) end() uint64 {
	return s.address + uint64(len(s.data))
}

// Map maps a copy of data at supplied address
func (s *Space) Map(address uint64, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if address+uint64(len(data)) < address {
		return fmt.Errorf("segment 0x%x+%v overflows address space", address, len(data))
	}
	aSegment := &segment{address: address, data: append([]byte{}, data...)}
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, candidate := range s.segments {
		if aSegment.address < candidate.end() && candidate.address < aSegment.end() {
			return fmt.Errorf("segment 0x%x+%v overlaps segment 0x%x+%v", address, len(data), candidate.address, len(candidate.data))
		}
	}
	s.segments = append(s.segments, aSegment)
	sort.Slice(s.segments, func(i, j int) bool {
		return s.segments[i].address < s.segments[j].address
	})
	return nil
}

// MapValue maps bytes of Go value referenced by supplied pointer
func (s *Space) MapValue(address uint64, value interface{}) error {
	rType := reflect.TypeOf(value)
	if rType == nil || rType.Kind() != reflect.Ptr {
		return fmt.Errorf("expected pointer, got %T", value)
	}
	ptr := xunsafe.AsPointer(value)
	if ptr == nil {
		return fmt.Errorf("value was nil: %T", value)
	}
	size := rType.Elem().Size()
	if size == 0 {
		return nil
	}
	return s.Map(address, unsafe.Slice((*byte)(ptr), size))
}

// Read returns a copy of size bytes at supplied address
func (s *Space) Read(address, size uint64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	s.mux.RLock()
	defer s.mux.RUnlock()
	index := sort.Search(len(s.segments), func(i int) bool {
		return s.segments[i].end() > address
	})
	if index == len(s.segments) {
		return nil, fmt.Errorf("%w: 0x%x+%v", ErrUnmapped, address, size)
	}
	aSegment := s.segments[index]
	if address < aSegment.address || address+size > aSegment.end() || address+size < address {
		return nil, fmt.Errorf("%w: 0x%x+%v", ErrUnmapped, address, size)
	}
	offset := address - aSegment.address
	return append([]byte{}, aSegment.data[offset:offset+size]...), nil
}

// Variable returns named value at supplied address
func (s *Space) Variable(name string, address uint64, valueType *Type) *Value {
	return &Value{name: name, typ: valueType, space: s, address: address}
}

// NewSpace creates an empty address space
func NewSpace() *Space {
	return &Space{}
}
