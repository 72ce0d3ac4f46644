package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cmdassist/internal/cli"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate command catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List platforms and vendors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		return cli.ListCatalog(cmd.OutOrStdout(), cfg)
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file (default: the configured or embedded catalog)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("catalog")
		if len(args) > 0 {
			path = args[0]
		}
		return cli.ValidateCatalog(cmd.OutOrStdout(), path)
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <platform|vendor>",
	Short: "Show the commands of one platform or vendor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		return cli.ShowCatalog(cmd.OutOrStdout(), cfg, args[0])
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <question...>",
	Short: "Answer a free-text question from the topic library",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}
		vendor, _ := cmd.Flags().GetString("vendor")
		return cli.SearchCatalog(cmd.OutOrStdout(), cfg, strings.Join(args, " "), vendor)
	},
}

func init() {
	catalogSearchCmd.Flags().String("vendor", "", "Vendor to weight results for (detected from the question when empty)")
	catalogCmd.AddCommand(catalogListCmd, catalogValidateCmd, catalogShowCmd, catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}
