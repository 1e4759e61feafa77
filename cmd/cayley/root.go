package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cayley/internal/config"
	"github.com/katalvlaran/cayley/internal/logging"
)

// app is the state shared by subcommands once the root pre-run has loaded it.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:   "cayley",
		Short: "Classify finite algebraic structures from their Cayley tables",
		Long: `Cayley checks the ring and field axioms over a finite set with two
binary operations, names the tightest class reached, explains why the next
one fails, and derives the zero-divisor and unit graphs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, cfgFile)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.NewWriter(cmd.ErrOrStderr(), level, cfg.Log.Format)

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))

	root.AddCommand(newAnalyzeCmd(a), newGenerateCmd(), newServeCmd(a))

	return root
}
