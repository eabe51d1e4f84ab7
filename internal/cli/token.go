package cli

import (
	"fmt"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils"
	"github.com/spf13/cobra"
)

var (
	flagTokenUser string
	flagTokenTTL  time.Duration
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&flagTokenUser, "user", "", "User id the desk API token is issued to")
	tokenCmd.Flags().DurationVar(&flagTokenTTL, "ttl", 12*time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the voucher desk API",
	Long:  `Sign a token with JWT_SECRET and JWT_ISSUER, the settings the voucher_desk server verifies against.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagTokenTTL <= 0 {
			return fmt.Errorf("--ttl must be positive")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		token, err := utils.GenerateJWT(flagTokenUser, cfg.JWTSecret, flagTokenTTL, cfg.JWTIssuer)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
