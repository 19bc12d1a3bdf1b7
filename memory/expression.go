package memory

import (
	"fmt"
	"strconv"
	"strings"
)

const stringCast = "(const char*)"

// EvaluateLiteral evaluates string literal expression, i.e. (const char*)"none"
func EvaluateLiteral(expression string) (string, error) {
	literal := strings.TrimSpace(expression)
	if strings.HasPrefix(literal, stringCast) {
		literal = strings.TrimSpace(literal[len(stringCast):])
	}
	if !strings.HasPrefix(literal, `"`) {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedExpression, expression)
	}
	ret, err := strconv.Unquote(literal)
	if err != nil {
		return "", fmt.Errorf("%w: %v: %v", ErrUnsupportedExpression, expression, err)
	}
	return ret, nil
}
