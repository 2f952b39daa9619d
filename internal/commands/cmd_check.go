package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/cdx/internal/core"
	"github.com/hay-kot/cdx/internal/probe"
	"github.com/hay-kot/cdx/pkgs/cll"
	"github.com/hay-kot/cdx/pkgs/printer"
	"github.com/hay-kot/cdx/pkgs/styles"
)

type CheckCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Filter string
		Strict bool
	}
}

func NewCheckCmd(coreFlags *core.Flags) *CheckCmd {
	return &CheckCmd{coreFlags: coreFlags}
}

func (cc *CheckCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "check",
		Usage:     "report whether paths are valid directory change targets",
		ArgsUsage: "[path...]",
		Description: `Resolves every path and checks that it exists and is a directory, without
 changing the working directory. With no arguments the home directory is checked.

 Rows can be filtered with an expression.

 Examples:
	 cdx check ~/src ~/Downloads ../music
	 cdx check --filter 'not ok' ~/a ~/b ~/c
	 cdx check --strict --filter 'kind == "tilde-slash"' ~/x ./y

 Expression variables:
	 - input:  the path as given
	 - path:   the resolved path
	 - kind:   absent, tilde, tilde-slash or other
	 - exists: the path exists
	 - dir:    the path is a directory
	 - ok:     a directory change would succeed
	 - error:  failure reason, empty when ok`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "only show rows matching the expression",
				Destination: &cc.flags.Filter,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "exit with an error when any shown row is not ok",
				Destination: &cc.flags.Strict,
			},
		},
		SkipFlagParsing: true,
		Action:          cll.WithRawArgs(cc.check),
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

var spinnerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("10")) // Green

func (cc *CheckCmd) check(ctx context.Context, _ *cli.Command, args []string) error {
	cfg, err := setupEnv(cc.coreFlags)
	if err != nil {
		return err
	}

	// Compile expression once before probing
	program, err := probe.CompileFilter(cc.flags.Filter)
	if err != nil {
		return fmt.Errorf("invalid expression: %w", err)
	}

	inputs := []core.Input{core.None()}
	if len(args) > 0 {
		inputs = make([]core.Input, 0, len(args))
		for _, arg := range args {
			inputs = append(inputs, core.Some(arg))
		}
	}

	var results []probe.Result
	action := func() {
		results = probe.Probe(cfg.Home, inputs, cfg.Check.Concurrency)
	}

	if showSpinner() {
		spin := spinner.New().
			Type(spinner.Line).
			Style(spinnerStyle).
			Title(" Checking paths").
			Action(action)

		if err := spin.Run(); err != nil {
			log.Warn().Err(err).Msg("spinner failed")
		}
	}

	// spinner did not run the action, e.g. output is piped
	if results == nil {
		action()
	}

	results, err = probe.Filter(program, results)
	if err != nil {
		return err
	}

	log.Debug().
		Int("inputs", len(inputs)).
		Int("shown", len(results)).
		Str("filter", cc.flags.Filter).
		Msg("check")

	items := make([]printer.StatusListItem, 0, len(results))
	failed := 0
	for _, r := range results {
		if !r.Ok() {
			failed++
		}

		items = append(items, printer.StatusListItem{
			Ok:     r.Ok(),
			Status: fmt.Sprintf("%s %s %s", r.Input, styles.Arrow, cfg.Display(r.Path)),
			Detail: core.Describe(r.Err),
		})
	}

	printer.Ctx(ctx).StatusList("", items)

	if cc.flags.Strict && failed > 0 {
		return fmt.Errorf("%d of %d paths are not valid directories", failed, len(results))
	}

	return nil
}
