package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/cmdassist"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cmdassist",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cmdassist version %s\n", strings.TrimSpace(cmdassist.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
