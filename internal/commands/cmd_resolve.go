package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/cdx/internal/core"
	"github.com/hay-kot/cdx/pkgs/cll"
)

type ResolveCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Abs bool
	}
}

func NewResolveCmd(coreFlags *core.Flags) *ResolveCmd {
	return &ResolveCmd{coreFlags: coreFlags}
}

func (rc *ResolveCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "resolve",
		Usage:     "print the directory a path specification resolves to",
		ArgsUsage: "[path]",
		Description: `Resolves a path specification the way 'cdx cd' would and prints the result.

 With no argument the home directory is printed. '~' and '~/...' are expanded
 against the home directory; every other value, including an empty string and
 '~user', is printed unchanged. The result is not cleaned or checked against the
 filesystem.

 Examples:
	 cdx resolve                  # $HOME
	 cdx resolve ~/Documents      # $HOME/Documents
	 cdx resolve ../music         # ../music
	 cdx resolve --abs ../music   # absolute path of ../music`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "abs",
				Aliases:     []string{"a"},
				Usage:       "make the result absolute against the current directory",
				Destination: &rc.flags.Abs,
			},
		},
		SkipFlagParsing: true,
		Action:          cll.WithRawArgs(rc.resolve),
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (rc *ResolveCmd) resolve(ctx context.Context, _ *cli.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("resolve accepts at most one path, got %d", len(args))
	}

	cfg, err := setupEnv(rc.coreFlags)
	if err != nil {
		return err
	}

	in := core.InputFromArgs(args)
	target := core.Resolve(cfg.Home, in)

	log.Debug().
		Str("input", in.String()).
		Stringer("kind", in.Kind()).
		Str("target", target).
		Msg("resolved")

	if rc.flags.Abs {
		target, err = filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("failed to make %q absolute: %w", target, err)
		}
	}

	_, err = fmt.Fprintln(stdout(ctx), target)
	return err
}
