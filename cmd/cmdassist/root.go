package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aretw0/cmdassist/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "cmdassist",
	Short: "Command Assist finds the right shell or network-device command",
	Long: `Command Assist walks you from a platform (Windows, Linux, macOS) or a
network device (firewall, router, switch) to a ready-to-run command with
explanation, variations and troubleshooting tips.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default $CMDASSIST_CONFIG or ~/.config/cmdassist/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "Catalog YAML file (default: embedded catalog)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// loadConfig resolves defaults, the config file, CMDASSIST_* env vars and
// the flags of cmd, in increasing precedence.
func loadConfig(cmd *cobra.Command, keys map[string]string) (config.Config, error) {
	v := config.NewViper()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
	}

	bindings := map[string]string{
		"catalog.path": "catalog",
		"log.level":    "log-level",
	}
	for k, f := range keys {
		bindings[k] = f
	}
	if err := bindFlags(v, cmd.Flags(), bindings); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag %q for %s", name, key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func debugFlag(cmd *cobra.Command) bool {
	debug, _ := cmd.Flags().GetBool("debug")
	return debug
}
