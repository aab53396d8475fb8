package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/j-kappa/ticketing-system/internal/interfaces/cli/migrate"
	"github.com/j-kappa/ticketing-system/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketing",
		Short: "IT support ticketing service",
		Long:  `A small IT support ticketing service with a REST API, SQLite storage and file attachments.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
