package memory

import (
	"fmt"
	"github.com/viant/synthview/visitor"
	"strconv"
	"strings"
)

// Catalog represents named types registry
type Catalog struct {
	types *visitor.SyncMap[string, *Type]
}

var builtins = NewCatalog()

// Define registers type under its name and optional aliases
func (c *Catalog) Define(aType *Type, aliases ...string) {
	c.types.Put(aType.name, aType)
	for _, alias := range aliases {
		c.types.Put(alias, aType)
	}
}

// Lookup returns named type, pointer (T*), reference (T&) and array (T[N]) names are derived from the element type
func (c *Catalog) Lookup(name string) (*Type, error) {
	name = strings.TrimSpace(name)
	if ret, ok := c.types.Get(name); ok {
		return ret, nil
	}
	switch {
	case strings.HasSuffix(name, "*"):
		elem, err := c.Lookup(name[:len(name)-1])
		if err != nil {
			return nil, err
		}
		return PointerTo(elem), nil
	case strings.HasSuffix(name, "&"):
		elem, err := c.Lookup(name[:len(name)-1])
		if err != nil {
			return nil, err
		}
		return ReferenceTo(elem), nil
	case strings.HasSuffix(name, "]"):
		index := strings.LastIndex(name, "[")
		if index == -1 {
			break
		}
		length, err := strconv.Atoi(name[index+1 : len(name)-1])
		if err != nil || length < 0 {
			return nil, fmt.Errorf("%w: invalid array length in %v", ErrUnknownType, name)
		}
		elem, err := c.Lookup(name[:index])
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem, length), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownType, name)
}

// NewCatalog creates catalog with builtin scalar types
func NewCatalog() *Catalog {
	ret := &Catalog{types: visitor.NewSyncMap[string, *Type]()}
	ret.Define(Void)
	ret.Define(Bool)
	ret.Define(Char, "signed char", "int8_t")
	ret.Define(UnsignedChar, "uint8_t")
	ret.Define(Short, "int16_t")
	ret.Define(UnsignedShort, "uint16_t")
	ret.Define(Int, "int32_t")
	ret.Define(UnsignedInt, "unsigned", "uint32_t")
	ret.Define(Long, "long long", "int64_t")
	ret.Define(UnsignedLong, "unsigned long long", "uint64_t")
	ret.Define(SizeT, "std::size_t")
	ret.Define(Float)
	ret.Define(Double)
	ret.Define(CString)
	return ret
}
