package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nrfppi/internal/logger"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ppitool",
		Short:         "Host tooling for the PPI channel connector",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			logger.Init(logger.Options{
				Level:  viper.GetString("log.level"),
				Format: viper.GetString("log.format"),
				Tool:   "ppitool",
			})
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./.ppitool.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (console, json)")
	_ = viper.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(newGenCmd(), newSimCmd())
	return root
}

// initConfig loads the optional YAML config. A missing default file is fine;
// a missing explicit --config is not.
func initConfig() error {
	viper.SetDefault("chip", "nrf52840")
	viper.SetEnvPrefix("PPITOOL")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return viper.ReadInConfig()
	}
	if _, err := os.Stat(".ppitool.yaml"); err == nil {
		viper.SetConfigFile(".ppitool.yaml")
		return viper.ReadInConfig()
	}
	return nil
}
