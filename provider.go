package synthview

import (
	"strconv"
	"strings"
)

type (
	//Provider computes logical children of an inspected value
	Provider interface {
		NumChildren() (int, error)
		HasChildren() bool
		//ChildIndex returns child index for supplied name or -1
		ChildIndex(name string) int
		ChildAt(index int) (Value, error)
		//Update invalidates provider state after host state change
		Update() error
	}

	//Factory creates a provider bound to inspected value
	Factory func(value Value) Provider
)

// IndexName returns indexed child name, i.e. [3]
func IndexName(index int) string {
	return "[" + strconv.Itoa(index) + "]"
}

func parseIndexName(name string) int {
	if !strings.HasPrefix(name, "[") || !strings.HasSuffix(name, "]") {
		return -1
	}
	index, err := strconv.Atoi(name[1 : len(name)-1])
	if err != nil || index < 0 {
		return -1
	}
	return index
}

func singleChildIndex(name string) int {
	if name == ValueChildName {
		return 0
	}
	return -1
}
