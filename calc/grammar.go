package calc

import (
	"fmt"

	"github.com/shopspring/decimal"

	cmb "github.com/shibukawa/combinator"
	tok "github.com/shibukawa/combinator/tokenizer"
)

// value is an expression rule producing a decimal.
type value = cmb.Combinator[tok.Token, decimal.Decimal]

// seq, drop and mapped pin the combinator helpers to the expression token
// type so the grammar below reads without instantiations.
func seq(parsers ...cmb.Parser[tok.Token]) cmb.Combinator[tok.Token, any] {
	return cmb.Seq(parsers...)
}

func drop(p cmb.Parser[tok.Token]) cmb.Combinator[tok.Token, cmb.Tuple] {
	return cmb.Drop(p)
}

func mapped(p cmb.Parser[tok.Token], m cmb.Mapper) value {
	return cmb.As[decimal.Decimal, tok.Token](cmb.Transform(p, m))
}

// tokenOf matches a single token of the given type.
func tokenOf(tokenType tok.TokenType) cmb.Combinator[tok.Token, tok.Token] {
	return cmb.Wrap(func(cur cmb.Cursor[tok.Token]) (tok.Token, cmb.Cursor[tok.Token], error) {
		token, ok := cur.Token()
		if !ok || token.Type != tokenType {
			return tok.Token{}, nil, cmb.ErrNotMatch
		}

		return token, cur.Next(), nil
	})
}

// number converts a numeric literal token into a decimal.
var number = cmb.TryMap(tokenOf(tok.NUMBER), func(token tok.Token) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(token.Value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q at line %d, column %d",
			ErrInvalidNumber, token.Value, token.Position.Line, token.Position.Column)
	}

	return d, nil
})

// buildGrammar composes the expression grammar once per calculator:
//
//	expression := sum
//	sum        := product (('+' | '-') product)*
//	product    := unary (('*' | '/') unary)*
//	unary      := '-'? power
//	power      := (primary '^')* primary
//	primary    := number | '(' expression ')'
//
// Power is right-associative, the other chains are left-associative, and
// unary minus binds looser than '^'. A signed exponent needs parentheses:
// the repetition inside power commits to what it consumed, so 2^-3 does
// not parse while 2^(-3) does.
func buildGrammar(opts Options) (expr value, list cmb.Combinator[tok.Token, []decimal.Decimal]) {
	var expression value

	// primary refers back to expression through this indirection.
	exprRef := cmb.Wrap(func(cur cmb.Cursor[tok.Token]) (decimal.Decimal, cmb.Cursor[tok.Token], error) {
		return expression.Parse(cur)
	})

	parens := mapped(
		seq(tokenOf(tok.OPENED_PARENS), exprRef, tokenOf(tok.CLOSED_PARENS)),
		cmb.Select(1),
	)

	primary := cmb.Or(number, parens)

	powBase := cmb.As[decimal.Decimal, tok.Token](seq(primary, drop(tokenOf(tok.POWER))))
	power := mapped(
		seq(cmb.ZeroOrMore(powBase), primary),
		cmb.FoldRight(func(item, acc decimal.Decimal) decimal.Decimal {
			return item.Pow(acc)
		}),
	)

	unary := mapped(
		seq(cmb.Optional(tokenOf(tok.MINUS)), power),
		func(args ...any) (any, error) {
			operand := args[1].(decimal.Decimal)
			if args[0].(cmb.Option[tok.Token]).Valid {
				return operand.Neg(), nil
			}

			return operand, nil
		},
	)

	productTail := cmb.As[cmb.Tuple, tok.Token](seq(
		tokenOf(tok.MULTIPLY).Or(tokenOf(tok.DIVIDE)),
		unary,
	))
	product := mapped(
		seq(unary, cmb.ZeroOrMore(productTail)),
		func(args ...any) (any, error) {
			acc := args[0].(decimal.Decimal)
			for _, item := range args[1].([]cmb.Tuple) {
				op := item[0].(tok.Token)
				rhs := item[1].(decimal.Decimal)

				if op.Type == tok.DIVIDE {
					if rhs.IsZero() {
						return nil, fmt.Errorf("%w at line %d, column %d",
							ErrDivisionByZero, op.Position.Line, op.Position.Column)
					}
					acc = acc.DivRound(rhs, opts.DivisionPrecision)
				} else {
					acc = acc.Mul(rhs)
				}
			}

			return acc, nil
		},
	)

	sumTail := cmb.As[cmb.Tuple, tok.Token](seq(
		tokenOf(tok.PLUS).Or(tokenOf(tok.MINUS)),
		product,
	))
	sum := mapped(
		seq(product, cmb.ZeroOrMore(sumTail)),
		cmb.FoldLeft(func(acc decimal.Decimal, item cmb.Tuple) decimal.Decimal {
			op := item[0].(tok.Token)
			rhs := item[1].(decimal.Decimal)

			if op.Type == tok.MINUS {
				return acc.Sub(rhs)
			}

			return acc.Add(rhs)
		}),
	)

	expression = sum

	expr = cmb.As[decimal.Decimal, tok.Token](seq(expression, cmb.EOS[tok.Token]()))

	// expression (',' expression)* with an optional trailing comma.
	listTail := cmb.As[decimal.Decimal, tok.Token](seq(drop(tokenOf(tok.COMMA)), expression))
	list = cmb.As[[]decimal.Decimal, tok.Token](cmb.Transform[tok.Token](
		seq(
			expression,
			cmb.ZeroOrMore(listTail),
			drop(cmb.Optional(tokenOf(tok.COMMA))),
			cmb.EOS[tok.Token](),
		),
		func(args ...any) (any, error) {
			values := []decimal.Decimal{args[0].(decimal.Decimal)}

			return append(values, args[1].([]decimal.Decimal)...), nil
		},
	))

	return expr, list
}
