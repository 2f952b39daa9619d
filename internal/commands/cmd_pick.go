package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/cdx/internal/core"
	"github.com/hay-kot/cdx/pkgs/cll"
	"github.com/hay-kot/cdx/pkgs/styles"
)

type PickCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Hidden bool
	}
}

func NewPickCmd(coreFlags *core.Flags) *PickCmd {
	return &PickCmd{coreFlags: coreFlags}
}

func (pc *PickCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "pick",
		Usage:     "interactively pick a subdirectory and print it",
		ArgsUsage: "[path]",
		Description: `Resolves the path (home when omitted), lists its subdirectories and prints the
 one you select. The picker is drawn on stderr so the result can be captured:

	 cd "$(cdx pick ~/src)"`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "hidden",
				Aliases:     []string{"a"},
				Usage:       "include directories starting with a dot",
				Destination: &pc.flags.Hidden,
			},
		},
		SkipFlagParsing: true,
		Action:          cll.WithRawArgs(pc.pick),
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (pc *PickCmd) pick(ctx context.Context, _ *cli.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("pick accepts at most one path, got %d", len(args))
	}
	if !isTerminal(os.Stdin) {
		return errors.New("pick requires an interactive terminal")
	}

	cfg, err := setupEnv(pc.coreFlags)
	if err != nil {
		return err
	}

	base := core.Resolve(cfg.Home, core.InputFromArgs(args))

	dirs, err := subdirectories(base, pc.flags.Hidden)
	if err != nil {
		return err
	}

	if len(dirs) == 0 {
		log.Info().Str("path", cfg.Display(base)).Msg("no subdirectories found")
		return nil
	}

	options := make([]huh.Option[string], 0, len(dirs))
	for _, d := range dirs {
		options = append(options, huh.NewOption(styles.Folder+" "+d, d))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a directory in " + cfg.Display(base)).
				Options(options...).
				Value(&selected),
		),
	).WithOutput(os.Stderr)

	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout(ctx), filepath.Join(base, selected))
	return err
}

// subdirectories returns the names of the directories directly under dir in
// lexical order.
func subdirectories(dir string, hidden bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if !hidden && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dirs = append(dirs, e.Name())
	}

	return dirs, nil
}
