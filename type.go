package synthview

import "fmt"

// EnsureValueType strips reference so that template arguments are read from the underlying type
func EnsureValueType(t Type) Type {
	if t == nil {
		return nil
	}
	if t.IsReference() {
		return t.Dereference()
	}
	return t
}

// TemplateArgument returns template argument of normalized type
func TemplateArgument(t Type, index int) (Type, error) {
	t = EnsureValueType(t)
	if t == nil {
		return nil, fmt.Errorf("%w: %v of undefined type", ErrTemplateArgument, index)
	}
	if index < 0 || index >= t.TemplateArgumentCount() {
		return nil, fmt.Errorf("%w: %v of %s", ErrTemplateArgument, index, t.Name())
	}
	arg := t.TemplateArgument(index)
	if arg == nil {
		return nil, fmt.Errorf("%w: %v of %s", ErrTemplateArgument, index, t.Name())
	}
	return arg, nil
}
