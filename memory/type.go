package memory

import (
	"github.com/viant/synthview"
	"reflect"
	"strconv"
	"strings"
)

// PointerSize represents target pointer size
const PointerSize = 8

// Kind represents type kind
type Kind int

const (
	ScalarKind Kind = iota
	PointerKind
	ReferenceKind
	ArrayKind
	StructKind
	//LiteralKind represents synthesized string literal
	LiteralKind
)

type (
	//Type represents native type descriptor
	Type struct {
		name    string
		kind    Kind
		size    uint64
		rType   reflect.Type
		elem    *Type
		length  int
		args    []*Type
		members []*Member
		index   map[string]int
	}

	//Member represents struct member
	Member struct {
		Name   string
		Offset uint64
		Type   *Type
	}
)

var (
	Void          = &Type{name: "void", kind: ScalarKind}
	Bool          = Scalar("bool", false)
	Char          = Scalar("char", int8(0))
	UnsignedChar  = Scalar("unsigned char", uint8(0))
	Short         = Scalar("short", int16(0))
	UnsignedShort = Scalar("unsigned short", uint16(0))
	Int           = Scalar("int", int32(0))
	UnsignedInt   = Scalar("unsigned int", uint32(0))
	Long          = Scalar("long", int64(0))
	UnsignedLong  = Scalar("unsigned long", uint64(0))
	SizeT         = Scalar("size_t", uint64(0))
	Float         = Scalar("float", float32(0))
	Double        = Scalar("double", float64(0))
	CString       = &Type{name: "const char*", kind: LiteralKind, size: PointerSize}
)

func (t *Type) Name() string {
	return t.name
}

func (t *Type) Kind() Kind {
	return t.kind
}

func (t *Type) IsReference() bool {
	return t.kind == ReferenceKind
}

// Dereference returns referent or pointee type, nil for other kinds
func (t *Type) Dereference() synthview.Type {
	if t.elem == nil || (t.kind != ReferenceKind && t.kind != PointerKind) {
		return nil
	}
	return t.elem
}

// Elem returns pointee, referent or array element type
func (t *Type) Elem() *Type {
	return t.elem
}

func (t *Type) ByteSize() uint64 {
	return t.size
}

// Len returns array length
func (t *Type) Len() int {
	return t.length
}

func (t *Type) TemplateArgumentCount() int {
	return len(t.args)
}

// TemplateArgument returns template argument or nil
func (t *Type) TemplateArgument(index int) synthview.Type {
	if index < 0 || index >= len(t.args) {
		return nil
	}
	return t.args[index]
}

// Members returns struct members in declaration order
func (t *Type) Members() []*Member {
	return t.members
}

// Member returns direct member or nil
func (t *Type) Member(name string) *Member {
	pos, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.members[pos]
}

// Scalar creates scalar type with size and encoding of supplied Go sample
func Scalar(name string, sample interface{}) *Type {
	rType := reflect.TypeOf(sample)
	return &Type{name: name, kind: ScalarKind, size: uint64(rType.Size()), rType: rType}
}

// PointerTo creates pointer type
func PointerTo(elem *Type) *Type {
	return &Type{name: elem.name + "*", kind: PointerKind, size: PointerSize, elem: elem}
}

// ReferenceTo creates reference type
func ReferenceTo(elem *Type) *Type {
	return &Type{name: elem.name + "&", kind: ReferenceKind, size: PointerSize, elem: elem}
}

// ArrayOf creates fixed size array type
func ArrayOf(elem *Type, length int) *Type {
	return &Type{name: elem.name + "[" + strconv.Itoa(length) + "]", kind: ArrayKind, size: elem.size * uint64(length), elem: elem, length: length}
}

// NewStruct creates struct type, name should already include template arguments
func NewStruct(name string, size uint64, members []*Member, args ...*Type) *Type {
	ret := &Type{name: name, kind: StructKind, size: size, args: args, members: members, index: make(map[string]int, len(members))}
	for i, member := range members {
		if _, ok := ret.index[member.Name]; !ok {
			ret.index[member.Name] = i
		}
	}
	return ret
}

// TemplateName returns template instantiation name, i.e. boost::variant<int, double>
func TemplateName(base string, args ...*Type) string {
	if len(args) == 0 {
		return base
	}
	builder := strings.Builder{}
	builder.WriteString(base)
	builder.WriteString("<")
	for i, arg := range args {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(arg.name)
	}
	if strings.HasSuffix(args[len(args)-1].name, ">") {
		builder.WriteString(" ")
	}
	builder.WriteString(">")
	return builder.String()
}
