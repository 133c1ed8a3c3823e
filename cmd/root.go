package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/murmur-im/groupuser/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "groupuser",
	Short: "GroupUser service for chat group membership",
	Long: `GroupUser is the authoritative store for chat groups and their
memberships. It exposes a Connect RPC interface for group lifecycle,
membership management, and role administration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
