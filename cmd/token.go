package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"usergroups/internal/services"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for the admin API",
	Run: func(cmd *cobra.Command, args []string) {
		commonSetUp()

		if !appCfg.AuthEnabled() {
			log.Fatal().Msg("JWT_SECRET must be set to issue tokens")
		}

		token, err := services.NewTokenService(appCfg.JWTSecret, appCfg.TokenTTL).IssueToken(tokenSubject)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to issue token")
		}
		fmt.Println(token)
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "token subject (required)")
	tokenCmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(tokenCmd)
}
