package synthview

import "strconv"

const (
	//ValueChildName is used by single child views
	ValueChildName = "val"

	//None is displayed for empty optional
	None = "none"
	//Uninitialized is displayed for variant without valid alternative
	Uninitialized = "uninitialized"
	//Dummy is displayed for unresolved multi index container element
	Dummy = "dummy"
)

// SentinelExpression returns literal expression evaluated by the host to a synthesized string value
func SentinelExpression(text string) string {
	return "(const char*)" + strconv.Quote(text)
}

func sentinel(value Value, text string) (Value, error) {
	return value.FromExpression(ValueChildName, SentinelExpression(text))
}
