package synthview

import (
	"errors"
	"fmt"
	"math"
)

var (
	//ErrIndexOutOfRange reports child query outside of provider range
	ErrIndexOutOfRange = errors.New("child index out of range")
	//ErrTemplateArgument reports missing template argument
	ErrTemplateArgument = errors.New("missing template argument")
	//ErrInvalidCount reports element count that does not fit int, usually uninitialized memory
	ErrInvalidCount = errors.New("invalid element count")
)

func countOf(value uint64, member string) (int, error) {
	if value > math.MaxInt {
		return 0, fmt.Errorf("%w: %v = %v", ErrInvalidCount, member, value)
	}
	return int(value), nil
}

func indexError(index, count int) error {
	return fmt.Errorf("%w: %v, len: %v", ErrIndexOutOfRange, index, count)
}
