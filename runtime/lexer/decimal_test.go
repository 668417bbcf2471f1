package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalLitmus(t *testing.T) {
	rule := DecimalRule{}
	assert.True(t, rule.Litmus("123"))
	assert.True(t, rule.Litmus("0"))
	assert.True(t, rule.Litmus("0 "))
	assert.True(t, rule.Litmus("0.5"))
	assert.False(t, rule.Litmus("0b1"))
	assert.False(t, rule.Litmus("0x1"))
	assert.False(t, rule.Litmus("0755"))
	assert.False(t, rule.Litmus("abc"))
	assert.False(t, rule.Litmus(""))
}

func TestDecimalTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "integer",
			input: "123",
			expected: []tokenExpectation{
				{LV_SIGNED, "123", 0, 0},
				{EOS, "", 0, 3},
			},
		},
		{
			name:  "zero alone",
			input: "0",
			expected: []tokenExpectation{
				{LV_SIGNED, "0", 0, 0},
				{EOS, "", 0, 1},
			},
		},
		{
			name:  "zero before space",
			input: "0 ",
			expected: []tokenExpectation{
				{LV_SIGNED, "0", 0, 0},
				{EOS, "", 0, 2},
			},
		},
		{
			name:  "decimal point",
			input: "3.14",
			expected: []tokenExpectation{
				{LV_DECIMAL, "3.14", 0, 0},
				{EOS, "", 0, 4},
			},
		},
		{
			name:  "trailing dot stays untouched",
			input: "12.",
			expected: []tokenExpectation{
				{LV_SIGNED, "12", 0, 0},
				{OP_ACCESS, ".", 0, 2},
				{EOS, "", 0, 3},
			},
		},
		{
			name:  "cascade after integer",
			input: "1..2",
			expected: []tokenExpectation{
				{LV_SIGNED, "1", 0, 0},
				{OP_CASCADE, "..", 0, 1},
				{LV_SIGNED, "2", 0, 3},
				{EOS, "", 0, 4},
			},
		},
		{
			name:  "member access after decimal",
			input: "1.5.abs",
			expected: []tokenExpectation{
				{LV_DECIMAL, "1.5", 0, 0},
				{OP_ACCESS, ".", 0, 3},
				{IDENTIFIER, "abs", 0, 4},
				{EOS, "", 0, 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}
