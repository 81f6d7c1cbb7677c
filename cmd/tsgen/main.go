package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tsgen",
		Short:         "Build and render TypeScript-flavoured syntax trees",
		Version:       version + " (" + commit + ")",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			processGlobalFlags()
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (default is $HOME/.tsgen.yaml)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")
	viper.BindPFlag("config", flags.Lookup("config"))
	viper.BindPFlag("no-color", flags.Lookup("no-color"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))

	cmd.AddCommand(newExamplesCmd(), newASTCmd(), newSpliceCmd())
	return cmd
}

// initConfig reads an optional config file and TSGEN_ environment
// variables. A missing default config file is not an error.
func initConfig() error {
	viper.SetEnvPrefix("tsgen")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if path := viper.GetString("config"); path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return err
		}
		viper.SetConfigFile(expanded)
		return viper.ReadInConfig()
	}
	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	viper.AddConfigPath(filepath.Clean(home))
	viper.SetConfigName(".tsgen")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}
