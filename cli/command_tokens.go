package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	tok "github.com/shibukawa/combinator/tokenizer"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	Expression []string `arg:"" help:"Expression to tokenize"`
	Raw        bool     `help:"Emit whitespace and comment tokens without width folding"`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	if config.Output.NoColor {
		color.NoColor = true
	}

	input := strings.Join(cmd.Expression, " ")

	if ctx.Verbose {
		color.Blue("Tokenizing: %s", input)
	}

	options := tok.TokenizerOptions{
		SkipWhitespace: true,
		SkipComments:   true,
		NormalizeWidth: true,
	}
	if cmd.Raw {
		options = tok.TokenizerOptions{}
	}

	failed := false

	tokenizer := tok.NewExprTokenizer(input, options)
	for token, err := range tokenizer.Tokens() {
		if err != nil {
			color.Red("Error: %s", err)
			failed = true

			continue
		}

		fmt.Printf("%3d:%-3d %-14s %s\n", token.Position.Line, token.Position.Column, displayName(token.Type), token.Value)
	}

	if failed {
		return ErrTokenizeFailed
	}

	return nil
}

// displayName renders a token type as a human readable label
func displayName(tokenType tok.TokenType) string {
	name := strings.ReplaceAll(strings.ToLower(tokenType.String()), "_", " ")

	return cases.Title(language.English).String(name)
}
