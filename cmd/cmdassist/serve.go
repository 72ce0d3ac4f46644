package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/cmdassist/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves wizard sessions over HTTP (see /swagger). Sessions live in memory
or in Redis and expire after --session-ttl of inactivity.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, map[string]string{
			"http.addr":      "addr",
			"session.store":  "store",
			"session.ttl":    "session-ttl",
			"redis.addr":     "redis-addr",
			"redis.password": "redis-password",
			"redis.db":       "redis-db",
		})
		if err != nil {
			return err
		}
		return cli.Serve(cfg, debugFlag(cmd))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("store", "memory", "Session store: memory or redis")
	serveCmd.Flags().Duration("session-ttl", 0, "Session inactivity timeout (default 30m)")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database")
}
