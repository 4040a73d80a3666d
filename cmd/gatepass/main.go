package main

import (
	"os"

	"github.com/spf13/cobra"

	"gatepass/internal/interfaces/cli/migrate"
	"gatepass/internal/interfaces/cli/request"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gatepass",
		Short: "Gatepass - visitor gate pass workflow",
		Long:  `Gatepass manages visitor gate pass requests from submission through security triage and department decision, and renders approved credentials as QR codes.`,
	}

	rootCmd.AddCommand(
		request.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
