package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringLitmus(t *testing.T) {
	rule := StringRule{}
	assert.True(t, rule.Litmus(`"My string"`))
	assert.True(t, rule.Litmus(`"""ml"""`))
	assert.True(t, rule.Litmus(`r"""raw"""`))
	assert.False(t, rule.Litmus(`r"not raw"`))
	assert.False(t, rule.Litmus("My String"))
	assert.False(t, rule.Litmus(""))
}

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "simple literal",
			input: `"My String"`,
			expected: []tokenExpectation{
				{LV_RAW_STRING, `"My String"`, 0, 0},
				{EOS, "", 0, 11},
			},
		},
		{
			name:  "empty string",
			input: `""`,
			expected: []tokenExpectation{
				{LV_RAW_STRING, `""`, 0, 0},
				{EOS, "", 0, 2},
			},
		},
		{
			name:  "interpolation promotes",
			input: `"hi {name}"`,
			expected: []tokenExpectation{
				{LV_INT_STRING, `"hi {name}"`, 0, 0},
				{EOS, "", 0, 11},
			},
		},
		{
			name:  "escaped brace stays raw",
			input: `"hi \{name}"`,
			expected: []tokenExpectation{
				{LV_RAW_STRING, `"hi \{name}"`, 0, 0},
				{EOS, "", 0, 12},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

func TestStringMultiline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "single line body",
			input: `"""abc"""`,
			expected: []tokenExpectation{
				{LV_ML_STRING, `"""abc"""`, 0, 0},
				{EOS, "", 0, 9},
			},
		},
		{
			name:  "body spans lines",
			input: "\"\"\"ml\ntest\"\"\"",
			expected: []tokenExpectation{
				{LV_ML_STRING, "\"\"\"ml\ntest\"\"\"", 0, 0},
				{EOS, "", 1, 7},
			},
		},
		{
			name:  "interpolated multiline",
			input: `"""hi {name}"""`,
			expected: []tokenExpectation{
				{LV_MLI_STRING, `"""hi {name}"""`, 0, 0},
				{EOS, "", 0, 15},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

func TestStringRawMultiline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "raw keeps raw type across lines",
			input: "r\"\"\"ml\ntest\"\"\"",
			expected: []tokenExpectation{
				{LV_RAW_STRING, "r\"\"\"ml\ntest\"\"\"", 0, 0},
				{EOS, "", 1, 7},
			},
		},
		{
			name:  "raw interpolation promotes to int string",
			input: `r"""hi {name}"""`,
			expected: []tokenExpectation{
				{LV_INT_STRING, `r"""hi {name}"""`, 0, 0},
				{EOS, "", 0, 16},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

func TestStringFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Errc
	}{
		{"unterminated at end of source", `"My String`, InvalidRawString},
		{"unterminated at newline", "\"My String\n void", InvalidRawString},
		{"unterminated multiline", `"""never closed`, InvalidMlString},
		{"multiline closed with one quote", `"""body"`, InvalidMlString},
		{"unterminated raw multiline", `r"""never closed`, InvalidRawString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertLexError(t, tt.name, tt.input, tt.want)
		})
	}
}
