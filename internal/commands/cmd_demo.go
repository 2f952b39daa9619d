package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/cdx/internal/core"
	"github.com/hay-kot/cdx/pkgs/styles"
)

type DemoCmd struct {
	coreFlags *core.Flags
}

func NewDemoCmd(coreFlags *core.Flags) *DemoCmd {
	return &DemoCmd{coreFlags: coreFlags}
}

func (dc *DemoCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:  "demo",
		Usage: "walk through a few directory changes and print the result of each",
		Description: `Prints the starting directory, changes to '..' and then to '~', printing the
 working directory after each step. A failing step is reported and the walk
 continues.`,
		Action: dc.demo,
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

type demoStep struct {
	label string
	input core.Input
}

var demoSteps = []demoStep{
	{label: "..", input: core.Some("..")},
	{label: "~", input: core.Some("~")},
}

func (dc *DemoCmd) demo(ctx context.Context, _ *cli.Command) error {
	cfg, err := setupEnv(dc.coreFlags)
	if err != nil {
		return err
	}

	return runDemo(stdout(ctx), os.Stderr, cfg, demoSteps, terminalWidth())
}

// runDemo prints the working directory to w after each step. Failed steps are
// reported on errw and do not stop the walk.
func runDemo(w, errw io.Writer, cfg core.ConfigFile, steps []demoStep, width int) error {
	home := cfg.Home

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to read working directory: %w", err)
	}

	_, _ = fmt.Fprintln(w, createStyledHeader("START", cfg.Display(wd), width))

	for _, step := range steps {
		if _, err := core.ChangeDir(home, step.input); err != nil {
			log.Debug().Err(err).Str("step", step.label).Msg("directory change failed")
			_, _ = fmt.Fprintln(errw, styles.Error(fmt.Sprintf("Error: %s", err)))
		}

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to read working directory: %w", err)
		}

		_, _ = fmt.Fprintln(w, createStyledHeader("AFTER '"+step.label+"'", cfg.Display(wd), width))
	}

	return nil
}
