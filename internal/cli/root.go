package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/wwwyo/xatsw/internal/config"
	"github.com/wwwyo/xatsw/internal/ctxlog"
	platformfs "github.com/wwwyo/xatsw/internal/platform/fs"
	"github.com/wwwyo/xatsw/internal/prompt"
)

var (
	// version is set via ldflags during build: -ldflags "-X github.com/wwwyo/xatsw/internal/cli.version=v1.0.0"
	version   = "v0.1.0"
	cfgFile   string
	logLevel  string
	logFormat string
)

func init() {
	if !semver.IsValid(version) {
		panic(fmt.Sprintf("invalid version set via ldflags: %q (must be valid semver)", version))
	}
}

// app represents the CLI application with its dependencies.
type app struct {
	fs          platformfs.FileSystem
	prompter    prompt.Prompter
	config      *config.Config
	configStore *config.Store
	configPath  string
	logger      *slog.Logger
}

// newApp creates a new app instance.
func newApp() *app {
	fsys := platformfs.NewFileSystem()
	return &app{
		fs:          fsys,
		prompter:    prompt.New(os.Stdin, os.Stderr),
		configStore: config.NewStore(fsys),
	}
}

// confirmer returns a prompter that auto-confirms when skip is set.
func (a *app) confirmer(skip bool) prompt.Prompter {
	if skip {
		return prompt.Yes{Prompter: a.prompter}
	}
	return a.prompter
}

// newRootCmd creates the root command for xatsw.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "xatsw",
		Short:         "Profile switcher",
		Long:          `xatsw keeps named snapshots of a target's chat.sol in a storage directory and switches between them.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel, logFormat, cmd.ErrOrStderr())
			a.logger = logger
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

			a.configPath = cfgFile
			cfg, err := a.configStore.Load(a.configPath)
			if err != nil {
				if errors.Is(err, config.ErrNotFound) {
					logger.Debug("starting with empty config", "reason", err)
				} else {
					logger.Warn("error while config reading", "error", err)
				}
			}
			a.config = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFileName, "config file path (.json/.conf, .yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(newExtractCmd(a))
	rootCmd.AddCommand(newLoadCmd(a))
	rootCmd.AddCommand(newListTargetCmd(a))
	rootCmd.AddCommand(newSetTargetCmd(a))
	rootCmd.AddCommand(newAddTargetCmd(a))
	rootCmd.AddCommand(newRemoveTargetCmd(a))
	rootCmd.AddCommand(newSetStorageCmd(a))
	rootCmd.AddCommand(newListProfilesCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))

	return rootCmd
}

// run executes one command, saves the config whatever the outcome, and returns the exit code.
func (a *app) run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	a.saveConfig()

	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrDeclined):
		fmt.Fprintln(stdout, "Aborted.")
		return 0
	case errors.Is(err, prompt.ErrAborted):
		return 1
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}

// saveConfig persists the config once per run. Failures are only reported.
func (a *app) saveConfig() {
	if a.config == nil {
		return
	}
	if err := a.configStore.Save(a.config, a.configPath); err != nil {
		a.logger.Warn("failed to save config", "path", a.configPath, "error", err)
	}
}

// Execute runs the CLI application.
func Execute() {
	a := newApp()
	os.Exit(a.run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
