package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/internal/config"
	"github.com/amonks/propdemo/internal/paths"
	"github.com/amonks/propdemo/options"
	"github.com/amonks/propdemo/property"
)

const (
	notFound         = "<not found>"
	configSourceName = "config"
)

// app carries everything a command needs. It is built once in main.
type app struct {
	parser  *options.Parser
	environ []string
	flags   rootFlags

	logger    *log.Logger
	cfg       *config.Config
	policy    alias.Policy
	separator string
}

type rootFlags struct {
	policy     string
	separator  string
	configPath string
	debug      bool
}

func newApp(parser *options.Parser, environ []string) *app {
	return &app{
		parser:  parser,
		environ: environ,
		logger:  newLogger(io.Discard, false),
		cfg:     &config.Config{},
	}
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "propdemo"})
	logger.SetLevel(log.WarnLevel)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// setup loads config and resolves the alias policy before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.flags.debug)

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("loaded config properties", "names", cfg.PropertyNames())

	if hasChangedFlags(cmd, "policy", "selector") {
		a.policy, err = alias.ParsePolicy(a.flags.policy)
		if err != nil {
			return &exitError{code: 2, err: err}
		}
	} else {
		a.policy, err = cfg.Policy()
		if err != nil {
			return err
		}
	}

	a.separator = cfg.Separator()
	if hasChangedFlags(cmd, "separator", "sep") {
		if a.flags.separator == "" {
			return &exitError{code: 2, err: fmt.Errorf("--separator must not be empty")}
		}
		a.separator = a.flags.separator
	}

	a.logger.Debug("resolved alias policy", "policy", a.policy, "separator", a.separator)
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.flags.configPath != "" {
		a.logger.Debug("loading config", "path", a.flags.configPath)
		return config.LoadPath(a.flags.configPath)
	}

	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loading config", "dir", cwd)
	return config.Load(cwd)
}

func (a *app) selector() alias.Selector {
	return a.policy.Selector(a.separator)
}

// parse parses the demo application's arguments.
func (a *app) parse(args []string) (*options.Set, error) {
	set, err := a.parser.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	a.logger.Debug("parsed arguments", "bindings", len(set.Bindings()), "non-options", set.NonOptions())
	return set, nil
}

// environment layers the command line over the OS environment over config.
func (a *app) environment(set *options.Set) (*property.CommandLine, *property.Environment) {
	commandLine := property.NewCommandLine(set, a.selector())
	env := property.NewEnvironment(
		commandLine,
		property.NewEnviron(a.environ),
		property.NewMap(configSourceName, a.cfg.Properties),
	)
	return commandLine, env
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func (e *exitError) ExitCode() int {
	return e.code
}
