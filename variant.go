package synthview

import "fmt"

// Variant represents boost::variant<T...> view, it has a single child typed by the active discriminant
type Variant struct {
	value  Value
	layout VariantLayout
}

// NumChildren returns 1
func (v *Variant) NumChildren() (int, error) {
	return 1, nil
}

func (v *Variant) HasChildren() bool {
	return true
}

func (v *Variant) ChildIndex(name string) int {
	return singleChildIndex(name)
}

// ChildAt returns storage reinterpreted as active alternative type, or uninitialized sentinel
// when discriminant is not less than template argument count
func (v *Variant) ChildAt(index int) (Value, error) {
	if index != 0 {
		return nil, indexError(index, 1)
	}
	which, err := v.Which()
	if err != nil {
		return nil, err
	}
	valueType := EnsureValueType(v.value.Type())
	if valueType == nil {
		return nil, fmt.Errorf("%w: variant type was nil", ErrTemplateArgument)
	}
	if which >= uint64(valueType.TemplateArgumentCount()) {
		return sentinel(v.value, Uninitialized)
	}
	alternative, err := TemplateArgument(valueType, int(which))
	if err != nil {
		return nil, err
	}
	storage, err := v.value.Member(v.layout.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to read variant storage: %w", err)
	}
	return storage.Reinterpret(ValueChildName, alternative)
}

// Which returns discriminant
func (v *Variant) Which() (uint64, error) {
	which, err := v.value.Member(v.layout.Which)
	if err != nil {
		return 0, fmt.Errorf("failed to read variant discriminant: %w", err)
	}
	ret, err := which.Unsigned()
	if err != nil {
		return 0, fmt.Errorf("failed to read variant discriminant: %w", err)
	}
	return ret, nil
}

func (v *Variant) Update() error {
	return nil
}

// NewVariant creates variant view
func NewVariant(value Value, opts ...Option) *Variant {
	options := newOptions(opts)
	return &Variant{value: value, layout: options.layout.Variant}
}
