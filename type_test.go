package synthview_test

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/viant/synthview"
	"github.com/viant/synthview/memory"
	"testing"
)

func TestEnsureValueType(t *testing.T) {
	optional := optionalType(t)
	assert.Equal(t, optional, synthview.EnsureValueType(memory.ReferenceTo(optional)))
	assert.Equal(t, optional, synthview.EnsureValueType(optional))
	assert.Nil(t, synthview.EnsureValueType(nil))
}

func TestTemplateArgument(t *testing.T) {
	variant := variantType(t)
	var testCases = []struct {
		description string
		valueType   synthview.Type
		index       int
		expect      string
		expectError bool
	}{
		{description: "first argument", valueType: variant, index: 0, expect: "int"},
		{description: "last argument", valueType: variant, index: 1, expect: "double"},
		{description: "through reference", valueType: memory.ReferenceTo(variant), index: 1, expect: "double"},
		{description: "out of range", valueType: variant, index: 2, expectError: true},
		{description: "negative", valueType: variant, index: -1, expectError: true},
		{description: "no arguments", valueType: memory.Int, index: 0, expectError: true},
	}
	for _, testCase := range testCases {
		actual, err := synthview.TemplateArgument(testCase.valueType, testCase.index)
		if testCase.expectError {
			assert.True(t, errors.Is(err, synthview.ErrTemplateArgument), testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual.Name(), testCase.description)
	}
}
