package synthview

import "fmt"

// MultiIndex represents boost::multi_index::multi_index_container view.
// Element count is accurate, elements are not resolved: every child is a dummy placeholder.
type MultiIndex struct {
	value  Value
	layout MultiIndexLayout
}

// NumChildren returns node count
func (m *MultiIndex) NumChildren() (int, error) {
	nodeCount, err := m.value.Member(m.layout.NodeCount)
	if err != nil {
		return 0, fmt.Errorf("failed to read multi index node count: %w", err)
	}
	count, err := nodeCount.Unsigned()
	if err != nil {
		return 0, fmt.Errorf("failed to read multi index node count: %w", err)
	}
	return countOf(count, m.layout.NodeCount)
}

func (m *MultiIndex) HasChildren() bool {
	return true
}

func (m *MultiIndex) ChildIndex(name string) int {
	return -1
}

// ChildAt returns dummy placeholder, node count is not checked
func (m *MultiIndex) ChildAt(index int) (Value, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: %v", ErrIndexOutOfRange, index)
	}
	//TODO walk ordered/hashed index nodes to resolve elements
	return sentinel(m.value, Dummy)
}

func (m *MultiIndex) Update() error {
	return nil
}

// NewMultiIndex creates multi index container view
func NewMultiIndex(value Value, opts ...Option) *MultiIndex {
	options := newOptions(opts)
	return &MultiIndex{value: value, layout: options.layout.MultiIndex}
}
