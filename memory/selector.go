package memory

import (
	"fmt"
	"strings"
)

// Selector represents resolved member path
type Selector struct {
	Path   string
	Offset uint64
	Type   *Type
}

// Name returns selector leaf name
func (s *Selector) Name() string {
	if index := strings.LastIndex(s.Path, "."); index != -1 {
		return s.Path[index+1:]
	}
	return s.Path
}

// Selector resolves dotted member path, i.e. m_holder.m_size, within inline struct members
func (t *Type) Selector(aPath string) (*Selector, error) {
	if aPath == "" {
		return nil, fmt.Errorf("%w: empty path in %s", ErrNoSuchMember, t.name)
	}
	ret := &Selector{Path: aPath, Type: t}
	for _, name := range strings.Split(aPath, ".") {
		if ret.Type.kind != StructKind {
			return nil, fmt.Errorf("%w: %v in %s, %s is not a struct", ErrNoSuchMember, aPath, t.name, ret.Type.name)
		}
		member := ret.Type.Member(name)
		if member == nil {
			return nil, fmt.Errorf("%w: %v in %s", ErrNoSuchMember, aPath, t.name)
		}
		ret.Offset += member.Offset
		ret.Type = member.Type
	}
	return ret, nil
}
