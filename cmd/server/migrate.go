package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/voyagr/payment-service/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the payments schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		db, err := database.Open(ctx, database.GetConfig())
		if err != nil {
			return err
		}
		defer db.Close()

		return database.Migrate(ctx, db)
	},
}
