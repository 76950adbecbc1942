package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shibukawa/combinator/cli"
)

// CLI represents the command-line interface
var CLI struct {
	Config  string        `help:"Configuration file path" default:"cmbcalc.yaml"`
	Verbose bool          `help:"Enable verbose output" short:"v"`
	Quiet   bool          `help:"Suppress output" short:"q"`
	Eval    cli.EvalCmd   `cmd:"" help:"Evaluate an arithmetic expression"`
	Tokens  cli.TokensCmd `cmd:"" help:"Show the token stream for an expression"`
	Version VersionCmd    `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("cmbcalc v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	// Create context with config path
	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
