// Package cli builds the cobra command tree for the resolver binary,
// following the teacher's internal/cli/root.go: a persistent
// pre-run loads config and sets up logging, subcommands are registered
// on the root, and errbuilder error codes are mapped to process exit
// codes at Execute's boundary.
package cli

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resolver/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "RESOLVER"

type rootConfig struct {
	ConfigFile string
	IndexPath  string
	Mode       string
	LogLevel   string
}

// Execute runs the root command and exits with the code appropriate to
// whatever error (if any) it returns.
func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := rootConfig{}
	cmd := &cobra.Command{
		Use:     "resolver",
		Short:   "Package-version dependency resolver",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVarP(&cfg.IndexPath, "index", "I", "", "Package index file path")
	cmd.PersistentFlags().StringVar(&cfg.Mode, "mode", "intersection", "Constraint combine mode: intersection|union")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")

	_ = viper.BindPFlag("index", cmd.PersistentFlags().Lookup("index"))
	_ = viper.BindPFlag("mode", cmd.PersistentFlags().Lookup("mode"))
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = cmd.MarkPersistentFlagRequired("index")

	cmd.AddCommand(newLatestCommand())
	cmd.AddCommand(newSatisfyCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read config file").
			WithCause(err)
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	// log.Ctx falls back to this logger for contexts that carry none, so
	// the core's debug-level resolution logs reach the console.
	zerolog.DefaultContextLogger = &log.Logger
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// exitCodeForError maps the error taxonomy of SPEC_FULL.md §7 to
// process exit codes, mirroring the teacher's exitCodeForError.
func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func currentMode() (core.CombineMode, error) {
	return core.ParseCombineMode(viper.GetString("mode"))
}
