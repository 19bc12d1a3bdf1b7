package memory

import (
	"fmt"
	"github.com/viant/synthview/tags"
	"github.com/viant/synthview/visitor"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
)

var mirrorMembers = visitor.NewSyncMap[reflect.Type, []*Member]()

// StructOf creates struct type with layout of supplied Go mirror struct.
// Member names come from layout tag or field name in lower underscore case.
func StructOf(name string, mirror interface{}, args ...*Type) (*Type, error) {
	rType := reflect.TypeOf(mirror)
	for rType != nil && rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType == nil || rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct mirror, got %T", mirror)
	}
	members, err := mirrorMembers.GetOrCreate(rType, func() ([]*Member, error) {
		return newMirrorMembers(rType)
	})
	if err != nil {
		return nil, err
	}
	return NewStruct(TemplateName(name, args...), uint64(rType.Size()), members, args...), nil
}

func newMirrorMembers(rType reflect.Type) ([]*Member, error) {
	xStruct := xunsafe.NewStruct(rType)
	var result []*Member
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		tag, err := tags.ParseMember(field.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid %v.%v tag: %w", rType.Name(), field.Name, err)
		}
		if tag != nil && tag.Skip {
			continue
		}
		memberType, err := mirrorType(field.Type, tag)
		if err != nil {
			return nil, fmt.Errorf("invalid %v.%v type: %w", rType.Name(), field.Name, err)
		}
		result = append(result, &Member{Name: memberName(field.Name, tag), Offset: uint64(field.Offset), Type: memberType})
	}
	return result, nil
}

func memberName(fieldName string, tag *tags.Member) string {
	if tag != nil && tag.Name != "" {
		return tag.Name
	}
	return text.CaseFormatUpperCamel.Format(fieldName, text.CaseFormatLowerUnderscore)
}

func mirrorType(rType reflect.Type, tag *tags.Member) (*Type, error) {
	if rType.Kind() == reflect.Struct {
		name := rType.Name()
		if tag != nil && tag.Type != "" {
			name = tag.Type
		}
		return StructOf(name, reflect.New(rType).Interface())
	}
	if tag != nil && tag.Type != "" {
		ret, err := builtins.Lookup(tag.Type)
		if err != nil {
			return nil, err
		}
		if ret.size != uint64(rType.Size()) {
			return nil, fmt.Errorf("%v size %v does not match %v size %v", ret.name, ret.size, rType.String(), rType.Size())
		}
		return ret, nil
	}
	if tag != nil && tag.Pointer {
		if rType.Size() != PointerSize {
			return nil, fmt.Errorf("pointer member requires %v bytes, got %v", PointerSize, rType.String())
		}
		return PointerTo(Void), nil
	}
	switch rType.Kind() {
	case reflect.Bool:
		return Bool, nil
	case reflect.Int8:
		return Char, nil
	case reflect.Uint8:
		return UnsignedChar, nil
	case reflect.Int16:
		return Short, nil
	case reflect.Uint16:
		return UnsignedShort, nil
	case reflect.Int32:
		return Int, nil
	case reflect.Uint32:
		return UnsignedInt, nil
	case reflect.Int, reflect.Int64:
		return Long, nil
	case reflect.Uint, reflect.Uint64:
		return UnsignedLong, nil
	case reflect.Float32:
		return Float, nil
	case reflect.Float64:
		return Double, nil
	case reflect.Uintptr, reflect.UnsafePointer:
		return PointerTo(Void), nil
	case reflect.Array:
		elem, err := mirrorType(rType.Elem(), nil)
		if err != nil {
			return nil, err
		}
		if rType.Elem().Kind() == reflect.Uint8 {
			elem = Char
		}
		return ArrayOf(elem, rType.Len()), nil
	}
	return nil, fmt.Errorf("unsupported mirror field type: %v", rType.String())
}
