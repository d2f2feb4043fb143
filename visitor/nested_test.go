package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNested(t *testing.T) {
	outer := [][]string{{"a", "b"}, nil, {}, {"c"}}
	inner := func(_ int, element []string) Visitor[int, string] {
		if element == nil {
			return nil
		}
		return SliceVisitorOf(element)
	}

	var testCases = []struct {
		description string
		stopAfter   int
		expectKeys  []Pair[int, int]
		expect      []string
	}{
		{
			description: "flattens in outer order",
			stopAfter:   -1,
			expectKeys:  []Pair[int, int]{{0, 0}, {0, 1}, {3, 0}},
			expect:      []string{"a", "b", "c"},
		},
		{
			description: "stop propagates to outer",
			stopAfter:   1,
			expectKeys:  []Pair[int, int]{{0, 0}, {0, 1}},
			expect:      []string{"a", "b"},
		},
	}
	for _, testCase := range testCases {
		var keys []Pair[int, int]
		var actual []string
		err := Nested(SliceVisitorOf(outer), inner)(func(key Pair[int, int], element string) (bool, error) {
			keys = append(keys, key)
			actual = append(actual, element)
			return len(actual)-1 != testCase.stopAfter, nil
		})
		assert.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectKeys, keys, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestNested_Error(t *testing.T) {
	expectErr := errors.New("test")
	visit := Nested(SliceVisitorOf([][]int{{1, 2}, {3}}), func(_ int, element []int) Visitor[int, int] {
		return SliceVisitorOf(element)
	})
	count := 0
	err := visit(func(key Pair[int, int], element int) (bool, error) {
		count++
		if element == 2 {
			return true, expectErr
		}
		return true, nil
	})
	assert.ErrorIs(t, err, expectErr)
	assert.Equal(t, 2, count)
}
