// Package calc evaluates arithmetic expressions with decimal precision,
// built on the combinator and tokenizer packages. It handles the four
// basic operations, right-associative power, unary minus, parentheses,
// and comma-separated expression lists, and accepts full-width digits and
// operators by folding them to their ASCII counterparts.
package calc

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	cmb "github.com/shibukawa/combinator"
	tok "github.com/shibukawa/combinator/tokenizer"
)

// Sentinel errors
var (
	// ErrInvalidExpression is returned when the input does not parse as a
	// complete expression.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrInvalidNumber is returned when a numeric literal cannot be
	// converted to a decimal.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDivisionByZero is returned when the right side of a division
	// evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// DefaultDivisionPrecision is the number of fractional digits division
// results are rounded to unless configured otherwise.
const DefaultDivisionPrecision int32 = 16

// Options are options for a Calculator.
type Options struct {
	// DivisionPrecision is the rounding precision of '/' results.
	// Zero or negative means DefaultDivisionPrecision.
	DivisionPrecision int32
}

// Calculator evaluates arithmetic expressions. The grammar is composed
// once at construction; a Calculator is immutable afterwards and safe for
// concurrent use.
type Calculator struct {
	expr    value
	list    cmb.Combinator[tok.Token, []decimal.Decimal]
	options Options
}

// New creates a Calculator.
func New(options ...Options) *Calculator {
	opts := Options{
		DivisionPrecision: DefaultDivisionPrecision,
	}
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.DivisionPrecision <= 0 {
		opts.DivisionPrecision = DefaultDivisionPrecision
	}

	expr, list := buildGrammar(opts)

	return &Calculator{
		expr:    expr,
		list:    list,
		options: opts,
	}
}

// Evaluate parses and evaluates a single expression. The whole input must
// be consumed; trailing tokens make the expression invalid.
func (c *Calculator) Evaluate(input string) (decimal.Decimal, error) {
	tokens, err := scan(input)
	if err != nil {
		return decimal.Zero, err
	}

	v, _, err := c.expr.Parse(cmb.NewSliceCursor(tokens))
	if err != nil {
		return decimal.Zero, evalError(input, err)
	}

	return v, nil
}

// EvaluateList parses and evaluates comma-separated expressions, with an
// optional trailing comma.
func (c *Calculator) EvaluateList(input string) ([]decimal.Decimal, error) {
	tokens, err := scan(input)
	if err != nil {
		return nil, err
	}

	values, _, err := c.list.Parse(cmb.NewSliceCursor(tokens))
	if err != nil {
		return nil, evalError(input, err)
	}

	return values, nil
}

// Evaluate evaluates a single expression without keeping a Calculator.
func Evaluate(input string, options ...Options) (decimal.Decimal, error) {
	return New(options...).Evaluate(input)
}

// EvaluateList evaluates comma-separated expressions without keeping a
// Calculator.
func EvaluateList(input string, options ...Options) ([]decimal.Decimal, error) {
	return New(options...).EvaluateList(input)
}

// scan tokenizes input for evaluation: whitespace and comments are
// dropped, width variants folded, and the EOF sentinel trimmed since the
// cursor models end of input itself.
func scan(input string) ([]tok.Token, error) {
	tokenizer := tok.NewExprTokenizer(input, tok.TokenizerOptions{
		SkipWhitespace: true,
		SkipComments:   true,
		NormalizeWidth: true,
	})

	tokens, err := tokenizer.AllTokens()
	if err != nil {
		return nil, err
	}

	if n := len(tokens); n > 0 && tokens[n-1].Type == tok.EOF {
		tokens = tokens[:n-1]
	}

	return tokens, nil
}

// evalError keeps semantic failures as they are and folds plain parse
// mismatches into ErrInvalidExpression.
func evalError(input string, err error) error {
	if errors.Is(err, cmb.ErrNotMatch) {
		return fmt.Errorf("%w: %q", ErrInvalidExpression, input)
	}

	return err
}
