package memory

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCatalog_Lookup(t *testing.T) {
	catalog := NewCatalog()
	optional := NewStruct("boost::optional<int>", 8, nil, Int)
	catalog.Define(optional)

	var testCases = []struct {
		description string
		name        string
		expectName  string
		expectKind  Kind
		expectSize  uint64
		expectError bool
	}{
		{description: "builtin", name: "double", expectName: "double", expectKind: ScalarKind, expectSize: 8},
		{description: "alias", name: "uint32_t", expectName: "unsigned int", expectKind: ScalarKind, expectSize: 4},
		{description: "defined", name: " boost::optional<int> ", expectName: "boost::optional<int>", expectKind: StructKind, expectSize: 8},
		{description: "pointer", name: "int*", expectName: "int*", expectKind: PointerKind, expectSize: 8},
		{description: "pointer to pointer", name: "char**", expectName: "char**", expectKind: PointerKind, expectSize: 8},
		{description: "reference", name: "boost::optional<int>&", expectName: "boost::optional<int>&", expectKind: ReferenceKind, expectSize: 8},
		{description: "array", name: "char[16]", expectName: "char[16]", expectKind: ArrayKind, expectSize: 16},
		{description: "string literal", name: "const char*", expectName: "const char*", expectKind: LiteralKind, expectSize: 8},
		{description: "unknown", name: "std::string", expectError: true},
		{description: "unknown pointee", name: "foo*", expectError: true},
		{description: "invalid array", name: "char[x]", expectError: true},
	}
	for _, testCase := range testCases {
		actual, err := catalog.Lookup(testCase.name)
		if testCase.expectError {
			assert.True(t, errors.Is(err, ErrUnknownType), testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectName, actual.Name(), testCase.description)
		assert.Equal(t, testCase.expectKind, actual.Kind(), testCase.description)
		assert.Equal(t, testCase.expectSize, actual.ByteSize(), testCase.description)
	}
}
