// Package cli implements the gymenv command
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/samuelfneumann/gymenv/utils/loggers"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration keys
const (
	keyBackend     = "backend"
	keyEnv         = "env"
	keyURL         = "url"
	keyRetries     = "retries"
	keySteps       = "steps"
	keySeed        = "seed"
	keyListen      = "listen"
	keyDebug       = "debug"
	keyLogDir      = "log-dir"
	keyReturnsFile = "returns-file"
)

// RootCmd is the gymenv command
var RootCmd = &cobra.Command{
	Use:   "gymenv",
	Short: "Inspect, roll out, and serve Gym environments",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger = loggers.ZapLogger(viper.GetBool(keyDebug))

		if dir := viper.GetString(keyLogDir); dir != "" {
			fileLogger, err := loggers.NewFileLogger(cmd.Name(), dir)
			if err != nil {
				return err
			}
			logger = loggers.Tee(logger, fileLogger)
		}
		return nil
	},
}

var logger = zap.NewNop()

// Execute adds all child commands to the root command and runs it
func Execute() {
	cobra.OnInitialize(initConfig)
	defer loggers.ZapLoggerSync()

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		loggers.ZapLoggerSync()
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("gymenv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String(keyBackend, backendLocal, "environment runtime: "+
		strings.Join(backendNames(), ", "))
	flags.String(keyEnv, "CartPole-v0", "environment name")
	flags.String(keyURL, "http://127.0.0.1:5000", "server URL for the "+
		"http backend")
	flags.Int(keyRetries, 0, "request retries for the http backend")
	flags.Bool(keyDebug, false, "enable debug logging")
	flags.String(keyLogDir, "", "directory to also write JSON logs to")

	for _, key := range []string{keyBackend, keyEnv, keyURL, keyRetries,
		keyDebug, keyLogDir} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	RootCmd.AddCommand(spacesCmd, rolloutCmd, serveCmd, envsCmd)
}
