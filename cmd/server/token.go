package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/voyagr/payment-service/internal/config"
	"github.com/voyagr/payment-service/internal/services"
)

var (
	tokenUser string
	tokenRole string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for calling the API when auth is enabled",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		token, err := services.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL).Issue(tokenUser, tokenRole)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "Value of the user_id claim")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "", "Value of the role claim (admin may refund)")
	tokenCmd.MarkFlagRequired("user")
}
