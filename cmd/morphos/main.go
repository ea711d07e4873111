package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pedrohavay/morphos/russian"
)

var (
	// Logger
	logger = zap.NewNop()

	// newLogger builds the command logger; tests replace it.
	newLogger = func(level string) (*zap.Logger, error) {
		config := zap.NewProductionConfig()
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		config.Level = lvl
		return config.Build()
	}
)

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	cfg    *Config
	engine *russian.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "morphos",
		Short: "Inflect Russian names and nouns",
		Long: `morphos declines Russian personal names ("Фамилия Имя Отчество") and nouns
across the six grammatical cases, detects the gender of a name's owner and
agrees nouns with numerals.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgFile, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			l, err := newLogger(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			if cfgFile != "" {
				logger.Debug("config loaded", zap.String("file", cfgFile))
			}
			rules := russian.DefaultRules()
			if cfg.Rules != "" {
				if rules, err = russian.LoadRules(cfg.Rules); err != nil {
					return err
				}
				logger.Info("rule tables loaded", zap.String("path", cfg.Rules))
			}
			a.cfg = cfg
			a.engine = russian.NewEngine(rules)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default morphos.yaml in ., $HOME/.morphos, /etc/morphos)")
	pf.String("rules", "", "YAML rule table file or directory replacing the embedded tables")
	pf.String("encoding", "utf-8", "encoding of names read from stdin: utf-8, windows-1251, koi8-r")
	pf.BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newInflectCmd(a),
		newCasesCmd(a),
		newGenderCmd(a),
		newPluralizeCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
