package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/shibukawa/combinator/calc"
)

// EvalCmd represents the eval command
type EvalCmd struct {
	Expression []string `arg:"" help:"Arithmetic expression to evaluate"`
	Precision  int32    `help:"Decimal places kept by division" default:"0"`
	List       bool     `short:"l" help:"Evaluate a comma separated list of expressions"`
}

// Run executes the eval command
func (cmd *EvalCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	if config.Output.NoColor {
		color.NoColor = true
	}

	precision := cmd.Precision
	if precision <= 0 {
		precision = config.Precision
	}

	input := strings.Join(cmd.Expression, " ")

	if ctx.Verbose {
		color.Blue("Evaluating: %s (precision %d)", input, precision)
	}

	calculator := calc.New(calc.Options{DivisionPrecision: precision})

	if cmd.List {
		values, err := calculator.EvaluateList(input)
		if err != nil {
			return err
		}

		for _, value := range values {
			if ctx.Quiet {
				fmt.Println(value.String())
			} else {
				color.Green("%s", value.String())
			}
		}

		return nil
	}

	value, err := calculator.Evaluate(input)
	if err != nil {
		return err
	}

	if ctx.Quiet {
		fmt.Println(value.String())
	} else {
		color.Green("%s = %s", input, value.String())
	}

	return nil
}
