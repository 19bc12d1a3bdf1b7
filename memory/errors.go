package memory

import "errors"

var (
	//ErrUnmapped reports read of unmapped target memory
	ErrUnmapped = errors.New("memory read failed")
	//ErrNoSuchMember reports missing struct member
	ErrNoSuchMember = errors.New("no such member")
	//ErrNotScalar reports integer read of non scalar value
	ErrNotScalar = errors.New("value is not scalar")
	//ErrUnsupportedExpression reports expression other than string literal
	ErrUnsupportedExpression = errors.New("unsupported expression")
	//ErrUnknownType reports unresolvable type name
	ErrUnknownType = errors.New("unknown type")
)
