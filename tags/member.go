package tags

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName defines struct tag describing native member layout
const TagName = "layout"

// Member represents native member layout tag, i.e. `layout:"m_start,pointer,type=int*"`
type Member struct {
	//Name native member name, the first tag element
	Name string
	//Pointer forces pointer member
	Pointer bool
	//Type native type name override
	Type string
	//Skip excludes field from layout
	Skip bool
}

// ParseMember parses layout tag, nil is returned when tag is absent
func ParseMember(tag reflect.StructTag) (*Member, error) {
	literal, ok := tag.Lookup(TagName)
	if !ok {
		return nil, nil
	}
	ret := &Member{}
	if strings.TrimSpace(literal) == "-" {
		ret.Skip = true
		return ret, nil
	}
	err := Elements(literal).Each(func(position int, pair Pair) error {
		if position == 0 && pair.Value == "" {
			ret.Name = pair.Key
			return nil
		}
		switch strings.ToLower(pair.Key) {
		case "name":
			ret.Name = pair.Value
		case "pointer":
			ret.Pointer = true
		case "type":
			ret.Type = strings.Trim(pair.Value, "'")
		default:
			return fmt.Errorf("unsupported %v tag option: %v", TagName, pair.Key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}
