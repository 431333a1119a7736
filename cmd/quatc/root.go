// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gviegas/mathtuple/config"
	"github.com/gviegas/mathtuple/internal/observability"
	"github.com/gviegas/mathtuple/linear"
)

// envPrefix is the prefix of the environment variables
// read by quatc, e.g. QUATC_TUPLE_PRECISION.
const envPrefix = "QUATC"

// app holds the state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *zap.Logger
}

// newRootCmd creates the quatc command tree.
// Each call returns an independent tree.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "quatc",
		Short:         "Evaluate quaternion and vector operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			a.log.Debug("Running command", zap.String("command", cmd.Name()), zap.Strings("args", args))
			return nil
		},
	}

	def := config.Default()
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./quatc.yaml)")
	pf.Bool("debug", true, "panic on non-finite results")
	pf.Int("precision", def.Tuple.Precision, "significant digits of printed numbers")
	pf.Bool("print-types", def.Tuple.PrintTypes, "prefix printed tuples with their type")
	pf.String("log-level", def.Logger.Level, "log level (debug, info, warn, error)")

	for key, flag := range map[string]string{
		"tuple.debug":       "debug",
		"tuple.precision":   "precision",
		"tuple.print_types": "print-types",
		"logger.level":      "log-level",
	} {
		// Lookup never fails for the flags defined above.
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newComposeCmd(a),
		newSlerpCmd(a),
		newAxisAngleCmd(a),
		newRotateCmd(a),
		newNormCmd(a),
	)
	return root, a
}

// defaultFile is read when --config is not given, if it
// exists.
const defaultFile = "quatc.yaml"

// baseConfig returns the configuration that flags and
// QUATC_* variables are layered on: the defaults, then the
// config file, then MATHTUPLE_* variables.
// Checks are enabled by default in quatc.
func (a *app) baseConfig() (*config.Config, error) {
	cfg := config.Default()
	cfg.Tuple.Debug = true
	cfg.Logger.ServiceName = "quatc"

	path := a.cfgFile
	if path == "" {
		path = defaultFile
	}
	if err := cfg.LoadFile(path); err != nil {
		// Only an explicit --config must exist.
		if a.cfgFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key of def, so that
// QUATC_* variables are seen by Unmarshal.
func (a *app) setDefaults(def *config.Config) {
	a.v.SetDefault("tuple.debug", def.Tuple.Debug)
	a.v.SetDefault("tuple.epsilon", def.Tuple.Epsilon)
	a.v.SetDefault("tuple.precision", def.Tuple.Precision)
	a.v.SetDefault("tuple.print_types", def.Tuple.PrintTypes)
	a.v.SetDefault("logger.level", def.Logger.Level)
	a.v.SetDefault("logger.format", def.Logger.Format)
	a.v.SetDefault("logger.service_name", def.Logger.ServiceName)
	a.v.SetDefault("logger.add_source", def.Logger.AddSource)
	a.v.SetDefault("logger.log_file", def.Logger.LogFile)
	a.v.SetDefault("logger.max_size", def.Logger.MaxSize)
	a.v.SetDefault("logger.max_backups", def.Logger.MaxBackups)
	a.v.SetDefault("logger.max_age", def.Logger.MaxAge)
	a.v.SetDefault("logger.compress", def.Logger.Compress)
}

// loadConfig resolves flags, environment and config file
// into a.cfg and installs the result.
// Precedence, highest first: flags, QUATC_* variables,
// MATHTUPLE_* variables, config file, defaults.
func (a *app) loadConfig(cmd *cobra.Command) error {
	base, err := a.baseConfig()
	if err != nil {
		return err
	}
	a.setDefaults(base)
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	observability.Initialize(a.cfg.Logger, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	a.log = observability.Logger()
	return linear.Configure(a.cfg.Tuple, a.log)
}

// options returns the formatting options in effect.
func (a *app) options() linear.Options { return linear.CurrentOptions() }

// execute runs quatc with args, printing any error to
// stderr.
func execute(args []string) error {
	defer observability.Sync()
	root, a := newRootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		a.log.Error("Command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "quatc:", err)
	}
	return err
}

// guard turns an invalid-tuple panic raised while running
// a command into an error.
// Any other panic is propagated.
func guard(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if e, ok := r.(error); ok && errors.Is(e, linear.ErrInvalid) {
				err = fmt.Errorf("%s: %w", cmd.Name(), e)
				return
			}
			panic(r)
		}()
		return run(cmd, args)
	}
}
