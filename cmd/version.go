package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of the rwa-ledger service.
const Version = "v0.1.0"

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show rwa-ledger version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("rwa-ledger " + Version)
			return nil
		},
	}
}
