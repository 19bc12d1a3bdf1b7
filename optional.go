package synthview

import "fmt"

// Optional represents boost::optional<T> view, it has a single child: the payload or none sentinel
type Optional struct {
	value  Value
	layout OptionalLayout
}

// NumChildren returns 1
func (o *Optional) NumChildren() (int, error) {
	return 1, nil
}

func (o *Optional) HasChildren() bool {
	return true
}

func (o *Optional) ChildIndex(name string) int {
	return singleChildIndex(name)
}

// ChildAt returns payload at storage offset 0 or none sentinel
func (o *Optional) ChildAt(index int) (Value, error) {
	if index != 0 {
		return nil, indexError(index, 1)
	}
	initialized, err := o.IsInitialized()
	if err != nil {
		return nil, err
	}
	if !initialized {
		return sentinel(o.value, None)
	}
	valueType, err := TemplateArgument(o.value.Type(), 0)
	if err != nil {
		return nil, err
	}
	storage, err := o.value.Member(o.layout.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to read optional storage: %w", err)
	}
	return storage.ChildAtOffset(ValueChildName, 0, valueType)
}

// IsInitialized returns true if initialized flag is set
func (o *Optional) IsInitialized() (bool, error) {
	flag, err := o.value.Member(o.layout.Initialized)
	if err != nil {
		return false, fmt.Errorf("failed to read optional flag: %w", err)
	}
	value, err := flag.Unsigned()
	if err != nil {
		return false, fmt.Errorf("failed to read optional flag: %w", err)
	}
	return value == 1, nil
}

func (o *Optional) Update() error {
	return nil
}

// NewOptional creates optional view
func NewOptional(value Value, opts ...Option) *Optional {
	options := newOptions(opts)
	return &Optional{value: value, layout: options.layout.Optional}
}
