package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/cdx/internal/core"
	"github.com/hay-kot/cdx/pkgs/cll"
	"github.com/hay-kot/cdx/pkgs/styles"
)

type CdCmd struct {
	coreFlags *core.Flags
	flags     struct {
		Exec  string
		Shell bool
	}
}

func NewCdCmd(coreFlags *core.Flags) *CdCmd {
	return &CdCmd{coreFlags: coreFlags}
}

func (cc *CdCmd) Register(app *cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      "cd",
		Usage:     "change into a directory and optionally run a command there",
		ArgsUsage: "[path]",
		Description: `Changes the working directory of cdx to the resolved path and prints it.

 A process cannot change the directory of the shell that started it. Use
 --exec or --shell to do work in the new directory, or 'cdx init' to install a
 shell function that follows the change.

 Examples:
	 cdx cd                          # go home
	 cdx cd ~/src --exec 'git status'
	 cdx cd /tmp --shell`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "exec",
				Aliases:     []string{"x"},
				Usage:       "command to run through the configured shell in the new directory",
				Destination: &cc.flags.Exec,
			},
			&cli.BoolFlag{
				Name:        "shell",
				Aliases:     []string{"s"},
				Usage:       "start an interactive shell in the new directory",
				Destination: &cc.flags.Shell,
			},
		},
		SkipFlagParsing: true,
		Action:          cll.WithRawArgs(cc.cd),
	}

	app.Commands = append(app.Commands, cmd)
	return app
}

func (cc *CdCmd) cd(ctx context.Context, _ *cli.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("cd accepts at most one path, got %d", len(args))
	}
	if cc.flags.Exec != "" && cc.flags.Shell {
		return fmt.Errorf("--exec and --shell cannot be used together")
	}

	cfg, err := setupEnv(cc.coreFlags)
	if err != nil {
		return err
	}

	// The error from the directory change is returned as-is.
	_, err = core.ChangeDir(cfg.Home, core.InputFromArgs(args))
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to read working directory: %w", err)
	}

	switch {
	case cc.flags.Exec != "":
		log.Info().Str("dir", cfg.Display(wd)).Msg("changed directory")
		return runCommand(ctx, wd, cfg.Shell, "-c", cc.flags.Exec)
	case cc.flags.Shell:
		log.Info().Str("dir", cfg.Display(wd)).Str("shell", cfg.Shell).Msg("starting shell")
		return runShell(wd, cfg.Shell)
	default:
		_, err = fmt.Fprintln(stdout(ctx), styles.Path(cfg.Display(wd)))
		return err
	}
}

// runCommand runs name in dir with attached stdio. The command is cancelled
// when cdx receives SIGINT or SIGTERM.
func runCommand(ctx context.Context, dir, name string, args ...string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	log.Debug().Str("dir", dir).Str("cmd", cmd.String()).Msg("executing")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// runShell starts an interactive shell in dir. Interrupts belong to the
// shell, so they are caught and dropped here instead of cancelling it.
func runShell(dir, shell string) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	cmd := exec.Command(shell)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// the exit status of an interactive shell is the user's business
			log.Debug().Int("code", exitErr.ExitCode()).Msg("shell exited")
			return nil
		}
		return fmt.Errorf("failed to start shell %s: %w", shell, err)
	}

	return nil
}
