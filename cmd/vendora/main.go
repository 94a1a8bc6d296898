package main

import (
	"os"

	"github.com/spf13/cobra"

	"vendora/internal/interfaces/cli/migrate"
	"vendora/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vendora",
		Short: "Vendora - marketplace issue and dispute resolution",
		Long:  `Vendora runs the marketplace resolution engine: buyer issues, seller responses, dispute escalation, and the case message threads behind them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
