package tags

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestElements_Each(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []Pair
	}{
		{
			description: "bare name with options",
			input:       "m_start,pointer,type=int*",
			expect:      []Pair{{Key: "m_start"}, {Key: "pointer"}, {Key: "type", Value: "int*"}},
		},
		{
			description: "blank elements skipped",
			input:       ",m_size, ,type=size_t",
			expect:      []Pair{{Key: "m_size"}, {Key: "type", Value: "size_t"}},
		},
		{
			description: "quoted value with comma",
			input:       "m_holder,type='holder<int, 2>',pointer",
			expect:      []Pair{{Key: "m_holder"}, {Key: "type", Value: "'holder<int, 2>'"}, {Key: "pointer"}},
		},
		{
			description: "block value with comma",
			input:       "name={a,b}, type = int",
			expect:      []Pair{{Key: "name", Value: "{a,b}"}, {Key: "type", Value: "int"}},
		},
		{
			description: "equal sign inside later element",
			input:       "m_size,type=size_t",
			expect:      []Pair{{Key: "m_size"}, {Key: "type", Value: "size_t"}},
		},
	}
	for _, testCase := range testCases {
		var actual []Pair
		err := Elements(testCase.input).Each(func(position int, pair Pair) error {
			assert.Equal(t, len(actual), position, testCase.description)
			actual = append(actual, pair)
			return nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
