package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/cdx/internal/core"
	"github.com/hay-kot/cdx/internal/shellinit"
)

type InitCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Name   string
		Binary string
	}
}

func NewInitCmd(coreFlags *core.Flags) *InitCmd {
	return &InitCmd{coreFlags: coreFlags}
}

func (ic *InitCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "init",
		Usage:     "print shell integration so the parent shell follows directory changes",
		ArgsUsage: "<bash|zsh|fish>",
		Description: `Prints a shell function that calls 'cdx resolve' and changes the directory of
 the running shell. Add it to your shell startup file:

	 eval "$(cdx init bash)"       # ~/.bashrc
	 eval "$(cdx init zsh)"        # ~/.zshrc
	 cdx init fish | source        # ~/.config/fish/config.fish`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "name of the shell function",
				Value:       "c",
				Destination: &ic.flags.Name,
			},
			&cli.StringFlag{
				Name:        "binary",
				Usage:       "cdx executable the function calls",
				Value:       "cdx",
				Destination: &ic.flags.Binary,
			},
		},
		Action: ic.render,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (ic *InitCmd) render(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return errors.New("init requires exactly one shell name")
	}

	sh, err := shellinit.ParseShell(c.Args().First())
	if err != nil {
		return err
	}

	script, err := shellinit.Render(sh, shellinit.Options{
		Name:   ic.flags.Name,
		Binary: ic.flags.Binary,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(stdout(ctx), script)
	return err
}
