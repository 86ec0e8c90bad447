package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/voyagr/payment-service/internal/config"
)

// @title Payment Service API
// @version 1.0
// @description Ledger of record for booking payments
// @host localhost:3003
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var configPath string

var rootCmd = &cobra.Command{
	Use:   "payment-service",
	Short: "Payment ledger for the booking platform",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init(configPath)
	},
	RunE:          runServe, // Default action is serve
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "Path to the config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(settlementCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
