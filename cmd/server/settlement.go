package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/voyagr/payment-service/internal/config"
	"github.com/voyagr/payment-service/internal/database"
	"github.com/voyagr/payment-service/internal/services"
)

var settlementCmd = &cobra.Command{
	Use:   "settlement <transaction-id>",
	Short: "Print the pacs.008 and pacs.002 documents for a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		db, err := database.Open(ctx, database.GetConfig())
		if err != nil {
			return err
		}
		defer db.Close()

		payment, err := services.NewPostgresPaymentStore(db).FindByTransactionID(ctx, args[0])
		if err != nil {
			return err
		}

		docs, err := services.NewISO20022Service(cfg.Currency, cfg.SettlementBIC).SettlementDocuments(payment)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "=== pacs.008 (FI to FI Customer Credit Transfer) ===\n%s\n\n", docs.CreditTransfer)
		fmt.Fprintf(out, "=== pacs.002 (Payment Status Report, %s) ===\n%s\n", docs.ISOStatus, docs.StatusReport)
		return nil
	},
}
