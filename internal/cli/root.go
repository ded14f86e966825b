// Package cli implements the botlog command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/willibrandon/botlog/configuration"
)

const keyConfig = "config"

// NewRootCommand builds the botlog command tree. Each call gets its own
// viper instance, so commands can be built and run independently.
func NewRootCommand() *cobra.Command {
	v := configuration.NewViper()

	rootCmd := &cobra.Command{
		Use:   "botlog",
		Short: "Log records the way the bots do",
		Long: `botlog writes structured log records through the bot formatter chain:
error stacks are extracted, big numbers are stringified and every record is
tagged with the bot and run identifiers.

Identifiers come from BOT_IDENTIFIER and RUN_IDENTIFIER, the level from
LOG_LEVEL, unless overridden by flags or a config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/botlog/config.yaml)")
	flags.String("bot-identifier", "", "bot identifier (default from BOT_IDENTIFIER, else NO_BOT_ID)")
	flags.String("run-identifier", "", "run identifier (default from RUN_IDENTIFIER, else a new UUID)")
	flags.String("log-level", "", "minimum level (verbose/debug/info/warn/error/fatal)")
	flags.String("theme", "", "console theme (default/literate/none)")
	flags.Bool("no-color", false, "disable colored output")

	_ = v.BindPFlag(keyConfig, flags.Lookup("config"))
	_ = v.BindPFlag(configuration.KeyBotIdentifier, flags.Lookup("bot-identifier"))
	_ = v.BindPFlag(configuration.KeyRunIdentifier, flags.Lookup("run-identifier"))
	_ = v.BindPFlag(configuration.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(configuration.KeyTheme, flags.Lookup("theme"))
	_ = v.BindPFlag(configuration.KeyNoColor, flags.Lookup("no-color"))

	rootCmd.AddCommand(newEmitCommand(v))
	rootCmd.AddCommand(newStripLinksCommand())
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func readConfig(v *viper.Viper) error {
	path := v.GetString(keyConfig)
	if path == "" {
		path = configuration.DefaultConfigPath()
	}
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
