package calc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/goccy/go-yaml"
	"github.com/shopspring/decimal"

	"github.com/shibukawa/combinator/testhelper"
	tok "github.com/shibukawa/combinator/tokenizer"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{name: "addition", expr: "1 + 2", want: "3"},
		{name: "product binds tighter than sum", expr: "2 + 3 * 4", want: "14"},
		{name: "sum after product", expr: "2 * 3 + 4", want: "10"},
		{name: "subtraction is left-associative", expr: "10 - 2 - 3", want: "5"},
		{name: "division", expr: "7 / 2", want: "3.5"},
		{name: "power is right-associative", expr: "2 ^ 3 ^ 2", want: "512"},
		{name: "power binds tighter than unary minus", expr: "-2 ^ 2", want: "-4"},
		{name: "parentheses", expr: "(1 + 2) * 3", want: "9"},
		{name: "negated group", expr: "-(1 + 2)", want: "-3"},
		{name: "parenthesized exponent", expr: "2 ^ (1 + 2)", want: "8"},
		{name: "exponent literal", expr: "1.5e2", want: "150"},
		{name: "decimal exactness", expr: "0.1 + 0.2", want: "0.3"},
		{name: "subtraction without drift", expr: "100 - 99.99", want: "0.01"},
		{name: "comment ignored", expr: "1 + 2 # three", want: "3"},
		{name: "no whitespace", expr: "1+2*3", want: "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got))
		})
	}
}

func TestEvaluateFullWidth(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{name: "full-width digits and plus", expr: "１２３＋４５６", want: "579"},
		{name: "full-width power", expr: "２＾３", want: "8"},
		{name: "full-width parens and multiply", expr: "（１＋２）＊３", want: "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got))
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{name: "division by zero" + testhelper.GetCaller(t), expr: "2 / 0", wantErr: ErrDivisionByZero},
		{name: "division by zero group" + testhelper.GetCaller(t), expr: "1 / (3 - 3)", wantErr: ErrDivisionByZero},
		{name: "division by zero in a repeated tail" + testhelper.GetCaller(t), expr: "3 + 1/0", wantErr: ErrInvalidExpression},
		{name: "dangling operator" + testhelper.GetCaller(t), expr: "1 + * 2", wantErr: ErrInvalidExpression},
		{name: "empty input" + testhelper.GetCaller(t), expr: "", wantErr: ErrInvalidExpression},
		{name: "trailing tokens" + testhelper.GetCaller(t), expr: "1 2", wantErr: ErrInvalidExpression},
		{name: "unbalanced parens" + testhelper.GetCaller(t), expr: "(1 + 2", wantErr: ErrInvalidExpression},
		{name: "bare exponent sign" + testhelper.GetCaller(t), expr: "2 ^ -3", wantErr: ErrInvalidExpression},
		{name: "double minus" + testhelper.GetCaller(t), expr: "--2", wantErr: ErrInvalidExpression},
		{name: "unexpected character" + testhelper.GetCaller(t), expr: "1 @ 2", wantErr: tok.ErrUnexpectedCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr)
			assert.IsError(t, err, tt.wantErr)
		})
	}
}

func TestDivisionByZeroReportsPosition(t *testing.T) {
	_, err := Evaluate("2/0")
	assert.IsError(t, err, ErrDivisionByZero)
	assert.True(t, strings.Contains(err.Error(), "line 1, column 2"))
}

func TestDivisionByZeroInsideTailDoesNotSurface(t *testing.T) {
	// A rejection inside a repeated tail is backtracked over like any
	// mismatch; the leftover tokens then fail the parse as a whole, and
	// the division error never reaches the caller.
	_, err := Evaluate("3 + 1/0")
	assert.IsError(t, err, ErrInvalidExpression)
	assert.False(t, errors.Is(err, ErrDivisionByZero))

	_, err = EvaluateList("1, 1/0")
	assert.IsError(t, err, ErrInvalidExpression)
	assert.False(t, errors.Is(err, ErrDivisionByZero))
}

func TestDivisionPrecision(t *testing.T) {
	rough := New(Options{DivisionPrecision: 2})

	got, err := rough.Evaluate("1 / 3")
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.33").Equal(got))

	got, err = New().Evaluate("1 / 3")
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.3333333333333333").Equal(got))

	got, err = New().Evaluate("2 / 3")
	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.6666666666666667").Equal(got))
}

func TestEvaluateList(t *testing.T) {
	values, err := EvaluateList("1 + 1, 2 * 2, 9 / 3")
	assert.NoError(t, err)
	assert.Equal(t, 3, len(values))
	assert.True(t, decimal.NewFromInt(2).Equal(values[0]))
	assert.True(t, decimal.NewFromInt(4).Equal(values[1]))
	assert.True(t, decimal.NewFromInt(3).Equal(values[2]))
}

func TestEvaluateListTrailingComma(t *testing.T) {
	values, err := EvaluateList("1, 2,")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(values))
}

func TestEvaluateListSingle(t *testing.T) {
	values, err := EvaluateList("6 / 2")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(values))
	assert.True(t, decimal.NewFromInt(3).Equal(values[0]))
}

func TestEvaluateListAcrossLines(t *testing.T) {
	input := testhelper.TrimIndent(t, `
		1 + 1,
		2 * 2, # doubles
		9 / 3`)

	values, err := EvaluateList(input)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(values))
}

func TestEvaluateListErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "empty input", expr: ""},
		{name: "bare comma", expr: ","},
		{name: "hole in the list", expr: "1, , 2"},
		{name: "division by zero in a later element", expr: "1, 1/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateList(tt.expr)
			assert.IsError(t, err, ErrInvalidExpression)
		})
	}
}

func TestExpressionFixtures(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "expressions.yaml"))
	assert.NoError(t, err)

	var fixture struct {
		Cases []struct {
			Name string `yaml:"name"`
			Expr string `yaml:"expr"`
			Want string `yaml:"want"`
		} `yaml:"cases"`
	}
	assert.NoError(t, yaml.Unmarshal(data, &fixture))
	assert.True(t, len(fixture.Cases) > 0)

	for _, tc := range fixture.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := Evaluate(tc.Expr)
			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.Want).Equal(got))
		})
	}
}
