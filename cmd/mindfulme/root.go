package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindfulme/internal/server"
)

var (
	commit = "none"
	date   = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "mindfulme",
	Short: "Mental wellness dashboard API",
	Long:  "mindfulme serves quotes, weather, news and mood logging for the MindfulMe dashboard, falling back to built-in content when an upstream is unavailable.",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mindfulme %s (commit: %s, built: %s)\n", server.Version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (optional, environment variables are always read)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
