package memory

import (
	"encoding/binary"
	"fmt"
	"github.com/viant/synthview"
	"reflect"
	"unsafe"
)

// Value represents a value bound to target memory, detached bytes or a synthesized literal
type Value struct {
	name    string
	typ     *Type
	space   *Space
	address uint64
	data    []byte
	literal *string
}

func (v *Value) Name() string {
	return v.name
}

// Type returns value type
func (v *Value) Type() synthview.Type {
	if v.typ == nil {
		return nil
	}
	return v.typ
}

// Address returns target address, detached and synthesized values have no address
func (v *Value) Address() (uint64, bool) {
	if v.data != nil || v.literal != nil {
		return 0, false
	}
	return v.address, true
}

// IsSynthesized returns true for values created from expression
func (v *Value) IsSynthesized() bool {
	return v.literal != nil
}

// Member returns named member, references are followed to the referent
func (v *Value) Member(name string) (synthview.Value, error) {
	target, err := v.referent()
	if err != nil {
		return nil, err
	}
	if target.literal != nil || target.typ == nil {
		return nil, fmt.Errorf("%w: %v in %v", ErrNoSuchMember, name, v.describe())
	}
	selector, err := target.typ.Selector(name)
	if err != nil {
		return nil, err
	}
	return target.at(selector.Name(), selector.Offset, selector.Type)
}

// Unsigned reads scalar or pointer as unsigned integer
func (v *Value) Unsigned() (uint64, error) {
	if v.typ == nil || (v.typ.kind != ScalarKind && v.typ.kind != PointerKind) {
		return 0, fmt.Errorf("%w: %v", ErrNotScalar, v.describe())
	}
	data, err := v.read(0, v.typ.size)
	if err != nil {
		return 0, err
	}
	switch len(data) {
	case 1:
		return uint64(data[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(data)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(data)), nil
	case 8:
		return binary.LittleEndian.Uint64(data), nil
	}
	return 0, fmt.Errorf("%w: %v has unsupported size %v", ErrNotScalar, v.describe(), len(data))
}

// Interface decodes scalar into its Go representation, pointers are returned as uint64 address
func (v *Value) Interface() (interface{}, error) {
	if v.literal != nil {
		return *v.literal, nil
	}
	if v.typ == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotScalar, v.describe())
	}
	switch v.typ.kind {
	case PointerKind:
		return v.Unsigned()
	case ScalarKind:
		if v.typ.rType == nil {
			return nil, fmt.Errorf("%w: %v", ErrNotScalar, v.describe())
		}
		data, err := v.read(0, v.typ.size)
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(v.typ.rType)
		copy(unsafe.Slice((*byte)(ptr.UnsafePointer()), v.typ.size), data)
		return ptr.Elem().Interface(), nil
	case ReferenceKind:
		target, err := v.referent()
		if err != nil {
			return nil, err
		}
		return target.Interface()
	}
	return nil, fmt.Errorf("%w: %v", ErrNotScalar, v.describe())
}

// Summary returns display text, aggregates have no summary
func (v *Value) Summary() (string, error) {
	if v.literal != nil {
		return *v.literal, nil
	}
	if v.typ == nil {
		return "", nil
	}
	switch v.typ.kind {
	case PointerKind:
		address, err := v.Unsigned()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("0x%x", address), nil
	case ReferenceKind:
		target, err := v.referent()
		if err != nil {
			return "", err
		}
		return target.Summary()
	case ScalarKind:
		if v.typ.rType == nil {
			return "", nil
		}
		value, err := v.Interface()
		if err != nil {
			return "", err
		}
		return fmt.Sprint(value), nil
	}
	return "", nil
}

// ChildAtOffset creates child at offset, pointer values are offset from the pointee address
func (v *Value) ChildAtOffset(name string, offset uint64, valueType synthview.Type) (synthview.Value, error) {
	childType, err := asType(valueType)
	if err != nil {
		return nil, err
	}
	if v.literal != nil {
		return nil, fmt.Errorf("synthesized value %v has no backing memory", v.name)
	}
	if v.typ != nil && v.typ.kind == PointerKind {
		base, err := v.Unsigned()
		if err != nil {
			return nil, err
		}
		return &Value{name: name, typ: childType, space: v.space, address: base + offset}, nil
	}
	return v.at(name, offset, childType)
}

// FromExpression creates synthesized string literal value
func (v *Value) FromExpression(name string, expression string) (synthview.Value, error) {
	literal, err := EvaluateLiteral(expression)
	if err != nil {
		return nil, err
	}
	return &Value{name: name, typ: CString, space: v.space, literal: &literal}, nil
}

// Reinterpret copies value bytes into a detached value of supplied type
func (v *Value) Reinterpret(name string, valueType synthview.Type) (synthview.Value, error) {
	targetType, err := asType(valueType)
	if err != nil {
		return nil, err
	}
	if v.literal != nil {
		return nil, fmt.Errorf("synthesized value %v has no backing memory", v.name)
	}
	data, err := v.read(0, targetType.size)
	if err != nil {
		return nil, err
	}
	return &Value{name: name, typ: targetType, space: v.space, data: data}, nil
}

func (v *Value) referent() (*Value, error) {
	if v.typ == nil || v.typ.kind != ReferenceKind {
		return v, nil
	}
	address, err := v.readAddress()
	if err != nil {
		return nil, err
	}
	return &Value{name: v.name, typ: v.typ.elem, space: v.space, address: address}, nil
}

func (v *Value) readAddress() (uint64, error) {
	data, err := v.read(0, PointerSize)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

func (v *Value) at(name string, offset uint64, valueType *Type) (*Value, error) {
	if v.data == nil {
		return &Value{name: name, typ: valueType, space: v.space, address: v.address + offset}, nil
	}
	data, err := v.read(offset, valueType.size)
	if err != nil {
		return nil, err
	}
	return &Value{name: name, typ: valueType, space: v.space, data: data}, nil
}

func (v *Value) read(offset, size uint64) ([]byte, error) {
	if v.literal != nil {
		return nil, fmt.Errorf("synthesized value %v has no backing memory", v.name)
	}
	if v.data != nil {
		if offset+size > uint64(len(v.data)) || offset+size < offset {
			return nil, fmt.Errorf("%w: %v+%v exceeds %v bytes of %v", ErrUnmapped, offset, size, len(v.data), v.describe())
		}
		return append([]byte{}, v.data[offset:offset+size]...), nil
	}
	if v.space == nil {
		return nil, fmt.Errorf("%w: %v has no address space", ErrUnmapped, v.describe())
	}
	return v.space.Read(v.address+offset, size)
}

func (v *Value) describe() string {
	if v.typ == nil {
		return v.name
	}
	return v.name + " (" + v.typ.name + ")"
}

func asType(valueType synthview.Type) (*Type, error) {
	ret, ok := valueType.(*Type)
	if !ok || ret == nil {
		return nil, fmt.Errorf("unsupported type descriptor: %T", valueType)
	}
	return ret, nil
}
