package main

// Must be first import - terminal fixes before lipgloss loads
import _ "github.com/wahlandcase/refcommit/internal/termfix"

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wahlandcase/refcommit/internal/app"
	"github.com/wahlandcase/refcommit/internal/clipboard"
	"github.com/wahlandcase/refcommit/internal/config"
	"github.com/wahlandcase/refcommit/internal/git"
	"github.com/wahlandcase/refcommit/internal/models"
	"github.com/wahlandcase/refcommit/internal/ui"
	"github.com/wahlandcase/refcommit/internal/update"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Trapping the signals keeps this process alive while git or the editor
	// handles an interrupt, so the template is still cleaned up afterwards
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func execute(ctx context.Context, args []string) int {
	code := 0
	rootCmd := newCommand(&code, args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "git-refcommit:", err)
		var exitErr *app.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		if code == 0 {
			code = 1
		}
	}
	return code
}

// newCommand builds the root command for args. Subcommands are only kept
// when args starts with one: otherwise cobra would look for a subcommand
// among git's flag values and pathspecs (e.g. "-m refs").
func newCommand(code *int, args []string) *cobra.Command {
	rootCmd := newRootCmd(code)
	if len(args) == 0 || !isSubcommand(rootCmd, args[0]) {
		rootCmd.ResetCommands()
	}
	rootCmd.SetArgs(args)
	return rootCmd
}

func isSubcommand(rootCmd *cobra.Command, name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func newRootCmd(code *int) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-refcommit [-m <msg>] [--refs-preview] [--refs-pick] [git commit args...]",
		Short: "git commit with issue and merge request references from the branch and clipboard",
		Long: "Drop-in replacement for git commit. References found in the branch name and the\n" +
			"clipboard are added to the commit message under a refs: block. All arguments other\n" +
			"than -m/--message, --refs-preview and --refs-pick are passed to git commit.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			params := newParams(cmd, cfg, args)
			params.Pick = func(refs []models.Reference) ([]models.Reference, error) {
				return ui.Pick(refs, cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			*code, err = app.Run(cmd.Context(), params)
			return err
		},
	}

	rootCmd.AddCommand(newRefsCmd(), newConfigCmd(), newSelfUpdateCmd(), newVersionCmd())

	return rootCmd
}

// loadConfig reads the config file and sets up logging from it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))

	return cfg, nil
}

func newParams(cmd *cobra.Command, cfg *config.Config, args []string) app.Params {
	params := app.Params{
		Config:    cfg,
		Args:      args,
		Branch:    git.CurrentBranch,
		Committer: git.NewExecCommitter(""),
		Stdout:    cmd.OutOrStdout(),
	}
	if cfg.Clipboard.Enabled {
		params.Clipboard = clipboard.NewCommandReader(cfg.Clipboard.Command)
	}
	return params
}

func newRefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refs",
		Short: "Show the references that would be added to the commit message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			in, refs := app.Refs(cmd.Context(), newParams(cmd, cfg, nil))
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderReferences(in.Branch, refs))
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := config.Path()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				data, err := cfg.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the default configuration unless a config file exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := config.Path()
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config already exists: %s", path)
				}
				if err := config.DefaultConfig().SaveFile(path); err != nil {
					return fmt.Errorf("writing config: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
				return nil
			},
		},
	)

	return configCmd
}

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Install the latest release using the gh CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			release, err := update.CheckForUpdate(ctx, update.GhRunner, version, cfg.Update.Repo)
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "already up to date:", version)
				return nil
			}

			binaryPath, err := update.BinaryPath()
			if err != nil {
				return fmt.Errorf("failed to get binary path: %w", err)
			}
			if err := update.DownloadAndInstall(ctx, update.GhRunner, release, cfg.Update.Repo, binaryPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "updated to", release.TagName)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
