package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfgFile holds the path to the configuration file specified via the
// --config flag, following the same precedence rules as the retrieval
// pack's own viper-based root command: flags, then environment, then
// config file, then defaults.
var cfgFile string

var log = logrus.StandardLogger()

// RootCmd is trackerd's top-level command. Only index, daemon and
// reset carry meaningful flag handling; every other subcommand named
// by the specification (backup, help, import, info, search, sparql,
// stats, status, tag, version, restore) is registered as a stub.
var RootCmd = &cobra.Command{
	Use:   "trackerd",
	Short: "ontology-driven semantic store and query daemon",
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.trackerd.yaml)")
	viper.BindPFlag("config", RootCmd.PersistentFlags().Lookup("config"))

	RootCmd.AddCommand(daemonCmd)
	RootCmd.AddCommand(indexCmd)
	RootCmd.AddCommand(resetCmd)
	for _, name := range []string{
		"backup", "help", "import", "info", "restore",
		"search", "sparql", "stats", "status", "tag", "version",
	} {
		RootCmd.AddCommand(stubCommand(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".trackerd")
	}

	viper.SetEnvPrefix("TRACKERD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

// Execute runs the root command, exiting the process with a non-zero
// status on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func stubCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("%s (not implemented in this core)", name),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(os.Stdout, "%s: not implemented in this core\n", name)
			return nil
		},
	}
}
