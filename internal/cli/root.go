// SPDX-License-Identifier: MIT

// Package cli wires the motif command line: cobra commands, flags bound
// into a per-command viper instance, and the zap logger.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/motif/internal/observability"
	"github.com/katalvlaran/motif/match"
	"github.com/katalvlaran/motif/order"
)

// EnvPrefix prefixes every environment override, e.g. MOTIF_VARIANT.
const EnvPrefix = "MOTIF"

// Flag keys, shared by cobra and viper.
const (
	keyOrder     = "order"
	keyVariant   = "variant"
	keyInduced   = "induced"
	keyDirected  = "directed"
	keyLimit     = "limit"
	keyStats     = "stats"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyLogFile   = "log-file"
)

// app carries the state shared by the commands of one root.
type app struct {
	fs  afero.Fs
	v   *viper.Viper
	log *zap.Logger
}

// NewRootCommand builds the command tree reading graphs from fs.
// Output goes to the command's Out and Err writers.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "motif PATTERN TARGET",
		Short: "Count subgraph matches of a pattern graph in a target graph",
		Long: "motif enumerates the induced subgraph isomorphisms (or, with --induced=false,\n" +
			"the subgraph monomorphisms) of PATTERN in TARGET and prints their number.\n" +
			"Both graphs are read in the binary amalfi format.",
		Args:              cobra.ExactArgs(2),
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
		RunE:              a.runSearch,
	}
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	pf := root.PersistentFlags()
	pf.Bool(keyDirected, true, "treat graphs as directed")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	pf.String(keyLogFormat, "console", "log format: console or json")
	pf.String(keyLogFile, "", "also write JSON logs to this rotating file")

	f := root.Flags()
	f.String(keyOrder, "gcf", "vertex order heuristic: "+strings.Join(order.Names(), ", "))
	f.String(keyVariant, match.DefaultVariant, "engine variant: "+strings.Join(variantNames(), ", "))
	f.Bool(keyInduced, true, "count induced isomorphisms instead of monomorphisms")
	f.Int(keyLimit, 0, "stop after this many matches (0 = all)")
	f.Bool(keyStats, false, "print search statistics to stderr")

	root.AddCommand(newGenerateCommand(a), newVersionCommand())

	return root
}

// setup binds the flags of the running command into viper, applies MOTIF_*
// environment overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	cfg := observability.DefaultConfig()
	cfg.Level = a.v.GetString(keyLogLevel)
	cfg.Format = a.v.GetString(keyLogFormat)
	cfg.File = a.v.GetString(keyLogFile)
	log, err := observability.NewLogger(cfg, zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())))
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("configuration loaded", zap.Any("settings", a.v.AllSettings()))

	return nil
}

func variantNames() []string {
	vs := match.Variants()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}
