package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/cmdassist/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive command wizard",
	Long: `Starts the wizard in the terminal. Type an option number, id or label,
free text where a search is offered, 'back', 'restart' or 'quit'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, map[string]string{
			"narration.enabled": "narrate",
			"narration.command": "narrate-cmd",
			"session.store":     "store",
			"redis.addr":        "redis-addr",
		})
		if err != nil {
			return err
		}

		headless, _ := cmd.Flags().GetBool("headless")
		jsonMode, _ := cmd.Flags().GetBool("json")
		form, _ := cmd.Flags().GetBool("form")
		sessionID, _ := cmd.Flags().GetString("session")
		fresh, _ := cmd.Flags().GetBool("fresh")

		return cli.Execute(cli.RunOptions{
			Config:    cfg,
			Headless:  headless,
			JSON:      jsonMode,
			Form:      form,
			Debug:     debugFlag(cmd),
			SessionID: sessionID,
			Fresh:     fresh,
			In:        cmd.InOrStdin(),
			Out:       cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("headless", false, "Plain text IO without banner or styling")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("form", false, "Use interactive select forms")
	runCmd.Flags().Bool("narrate", false, "Speak each transition")
	runCmd.Flags().String("narrate-cmd", "", "Speech program reading text on stdin (e.g. \"espeak --stdin\")")
	runCmd.Flags().String("session", "", "Keep the wizard state under this id so a later run resumes it")
	runCmd.Flags().Bool("fresh", false, "Discard the stored session before starting")
	runCmd.Flags().String("store", "memory", "Session store for --session: memory or redis")
	runCmd.Flags().String("redis-addr", "localhost:6379", "Redis address")

	// 'run' is the default command.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
