package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/rubiojr/rugo-cmath/doc"
	"github.com/rubiojr/rugo-cmath/modules"
)

// defaultModule is used when a function name is not qualified.
const defaultModule = "cmath"

// Execute runs the rcmath CLI with the given version string.
// Import modules via blank imports before calling this function
// so they register via init().
func Execute(version string) {
	app := newApp(version, os.Stdout)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(version string, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:                   "rcmath",
		Usage:                  "Evaluate real and complex math functions",
		Version:                version,
		UseShortOptionHandling: true,
		Writer:                 stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:      "call",
				Usage:     "Call a module function on numeric literals",
				ArgsUsage: "[-m module] <func> [args...]",
				// negative literals such as -4 must reach the function
				SkipFlagParsing: true,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return callAction(cmd, stdout)
				},
			},
			{
				Name:      "eval",
				Usage:     "Evaluate a call expression such as 'cmath.log(-8, 2)'",
				ArgsUsage: "<expr>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return evalAction(cmd, stdout)
				},
			},
			{
				Name:      "doc",
				Usage:     "Show documentation for modules and functions",
				ArgsUsage: "[module | module.func]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return docAction(cmd, stdout)
				},
			},
		},
	}
}

func callAction(cmd *cli.Command, stdout io.Writer) error {
	args := cmd.Args().Slice()
	module := defaultModule
	if len(args) > 0 && (args[0] == "-m" || args[0] == "--module") {
		if len(args) < 2 {
			return fmt.Errorf("flag %s needs a module name", args[0])
		}
		module, args = args[1], args[2:]
	}
	if len(args) < 1 {
		return fmt.Errorf("usage: rcmath call [-m module] <func> [args...]")
	}

	fn := args[0]
	if mod, name, ok := strings.Cut(fn, "."); ok {
		module, fn = mod, name
	}

	vals := make([]interface{}, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := ParseLiteral(a)
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}

	result, err := modules.Call(module, fn, vals...)
	if err != nil {
		return err
	}
	return printResult(cmd, stdout, result)
}

func evalAction(cmd *cli.Command, stdout io.Writer) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: rcmath eval <expr>")
	}
	result, err := Eval(strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return err
	}
	return printResult(cmd, stdout, result)
}

func docAction(cmd *cli.Command, stdout io.Writer) error {
	if cmd.NArg() < 1 {
		_, err := fmt.Fprint(stdout, doc.FormatAllModules())
		return err
	}
	out, err := doc.Lookup(cmd.Args().First())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, out)
	return err
}

func printResult(cmd *cli.Command, stdout io.Writer, result interface{}) error {
	useColor := colorEnabled(cmd.Root().Bool("no-color"), stdout)
	_, err := fmt.Fprintln(stdout, FormatResult(result, useColor))
	return err
}
