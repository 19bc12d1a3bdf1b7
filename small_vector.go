package synthview

import "fmt"

// SmallVector represents boost::container::small_vector<T, N> view.
// Inline and heap storage are both read through the holder start pointer.
type SmallVector struct {
	value  Value
	layout SmallVectorLayout
}

// NumChildren returns holder size
func (v *SmallVector) NumChildren() (int, error) {
	size, err := v.holderMember(v.layout.Size)
	if err != nil {
		return 0, err
	}
	count, err := size.Unsigned()
	if err != nil {
		return 0, fmt.Errorf("failed to read small vector size: %w", err)
	}
	return countOf(count, v.layout.Holder+"."+v.layout.Size)
}

func (v *SmallVector) HasChildren() bool {
	return true
}

// ChildIndex returns index for [i] names
func (v *SmallVector) ChildIndex(name string) int {
	return parseIndexName(name)
}

// ChildAt returns element at index * sizeof(T) from the start pointer
func (v *SmallVector) ChildAt(index int) (Value, error) {
	count, err := v.NumChildren()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= count {
		return nil, indexError(index, count)
	}
	valueType, err := TemplateArgument(v.value.Type(), 0)
	if err != nil {
		return nil, err
	}
	start, err := v.holderMember(v.layout.Start)
	if err != nil {
		return nil, err
	}
	offset := uint64(index) * valueType.ByteSize()
	return start.ChildAtOffset(IndexName(index), offset, valueType)
}

func (v *SmallVector) holderMember(name string) (Value, error) {
	holder, err := v.value.Member(v.layout.Holder)
	if err != nil {
		return nil, fmt.Errorf("failed to read small vector holder: %w", err)
	}
	ret, err := holder.Member(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read small vector holder: %w", err)
	}
	return ret, nil
}

func (v *SmallVector) Update() error {
	return nil
}

// NewSmallVector creates small vector view
func NewSmallVector(value Value, opts ...Option) *SmallVector {
	options := newOptions(opts)
	return &SmallVector{value: value, layout: options.layout.SmallVector}
}
