// Copyright (c) 2026 ContaBancaria Team
// ContaBancaria - bank account opening form
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the shared
// startup (config, i18n, logging) that every subcommand runs first.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/contabancaria/contabancaria/internal/config"
	"github.com/contabancaria/contabancaria/internal/i18n"
	"github.com/contabancaria/contabancaria/internal/logging"
	"github.com/contabancaria/contabancaria/ui/prompt"
	"github.com/contabancaria/contabancaria/ui/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// app is the state shared by the commands of one root command instance.
type app struct {
	cfgFile string
	config  config.Config

	// isTerminal reports whether stdin and stdout are interactive.
	isTerminal func() bool
	// runTUI starts the full-screen form.
	runTUI func(ctx context.Context, opts tui.Options) error
	// newDriver builds the question driver of the prompt command.
	newDriver func(out io.Writer) prompt.Driver
	// openLogFile opens log.file for the duration of the TUI.
	openLogFile func(path string) (io.WriteCloser, error)
}

func newApp() *app {
	return &app{
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		runTUI:    tui.Run,
		newDriver: prompt.NewSurveyDriver,
		openLogFile: func(path string) (io.WriteCloser, error) {
			return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		},
	}
}

// setup resolves the configuration and initializes i18n and logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.config, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	// a missing file is expected on first run, the defaults apply
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults")
	} else if err != nil {
		i18n.Init(i18n.DefaultLang)
		return errors.New(i18n.T("cli.error_load_config", err))
	}

	lang, err := resolveLanguage(a.config.Language)
	if err != nil {
		return err
	}
	a.config.Language = lang
	i18n.Init(lang)

	if a.config.Log.Level != "" {
		if err := logging.SetLevel(a.config.Log.Level); err != nil {
			return err
		}
	}
	logging.Debugf("config resolved: language=%s alt_screen=%t", a.config.Language, a.config.UI.AltScreen)
	return nil
}

// resolveLanguage maps lang to the tag of an embedded locale, ignoring case.
func resolveLanguage(lang string) (string, error) {
	if lang == "" {
		return i18n.DefaultLang, nil
	}
	tags := slices.Sorted(maps.Keys(i18n.GetAvailableLocales()))
	for _, tag := range tags {
		if strings.EqualFold(tag, lang) {
			return tag, nil
		}
	}
	i18n.Init(i18n.DefaultLang)
	return "", errors.New(i18n.T("cli.error_unknown_language", lang, strings.Join(tags, ", ")))
}

// runForm is the default action: the full-screen form.
func (a *app) runForm(cmd *cobra.Command, _ []string) error {
	if !a.isTerminal() {
		return errors.New(i18n.T("cli.error_no_terminal"))
	}

	// log lines would corrupt the screen, send them to log.file or nowhere
	var logOut io.Writer
	if a.config.Log.File != "" {
		f, err := a.openLogFile(a.config.Log.File)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logging.SetOutput(logOut)
	defer logging.SetOutput(os.Stderr)

	return a.runTUI(cmd.Context(), tui.Options{
		AltScreen:   a.config.UI.AltScreen,
		CopySummary: a.config.UI.CopySummary,
	})
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// only an explicit --config is honoured
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command. Each call
// returns an independent command tree, which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contabancaria",
		Short: "ContaBancaria opens a bank account from the terminal.",
		Long: `ContaBancaria collects the data needed to open a bank account
(name, age, sex, credit limit and student status), validates it and
prints the account summary.

Running without a subcommand launches the interactive form.`,
		Version:           versionString(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runForm,
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", i18n.DefaultLang, `form language ("pt-BR", "en")`)
	cmd.PersistentFlags().String("log.level", "info", `log level ("debug", "info", "warn", "error")`)

	cmd.AddCommand(
		newPromptCmd(a),
		newVersionCmd(),
		newConfigCmd(a),
	)

	return cmd
}
