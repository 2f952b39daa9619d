package cll

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/urfave/cli/v3"
)

// ArgsActionFunc is an action that receives the positional arguments of the
// command exactly as they were given.
type ArgsActionFunc func(ctx context.Context, cmd *cli.Command, args []string) error

// WithRawArgs adapts fn for a command that sets SkipFlagParsing. The default
// parser trims whitespace from positional arguments and stops at the first
// empty one; here positionals are passed through untouched while the command's
// own flags are still applied. Everything after "--" is positional.
//
// Example:
//
//	cmd := &cli.Command{
//		Name:            "resolve",
//		SkipFlagParsing: true,
//		Flags:           []cli.Flag{&cli.BoolFlag{Name: "abs"}},
//		Action:          cll.WithRawArgs(resolve),
//	}
func WithRawArgs(fn ArgsActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		args, help, err := splitArgs(cmd, cmd.Args().Slice())
		if err != nil {
			return err
		}
		if help {
			return cli.ShowSubcommandHelp(cmd)
		}

		return fn(ctx, cmd, args)
	}
}

// splitArgs applies flags found in raw to cmd and returns the remaining
// positional arguments.
func splitArgs(cmd *cli.Command, raw []string) (args []string, help bool, err error) {
	args = []string{}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		if arg == "--" {
			args = append(args, raw[i+1:]...)
			break
		}

		if !isFlag(arg) {
			args = append(args, arg)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-"), "=")
		if name == "h" || name == "help" {
			return nil, true, nil
		}

		fl := localFlag(cmd, name)
		if fl == nil {
			return nil, false, fmt.Errorf("flag provided but not defined: -%s", name)
		}

		switch {
		case hasValue:
		case isBoolFlag(fl):
			value = "true"
		case i+1 < len(raw):
			i++
			value = raw[i]
		default:
			return nil, false, fmt.Errorf("flag needs an argument: %s", arg)
		}

		if err := fl.Set(name, value); err != nil {
			return nil, false, fmt.Errorf("invalid value %q for flag -%s: %w", value, name, err)
		}
	}

	return args, false, nil
}

// isFlag mirrors the cli parser: "-" alone and "-<non-letter>..." are values.
func isFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	return arg[1] == '-' || unicode.IsLetter(rune(arg[1]))
}

func localFlag(cmd *cli.Command, name string) cli.Flag {
	for _, fl := range cmd.Flags {
		if slices.Contains(fl.Names(), name) {
			return fl
		}
	}
	return nil
}

func isBoolFlag(fl cli.Flag) bool {
	bf, ok := fl.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
