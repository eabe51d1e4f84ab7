package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/credentials"
	"github.com/spf13/cobra"
)

var flagToken string

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(keygenCmd)

	loginCmd.Flags().StringVar(&flagToken, "token", "", "Backend bearer token (read from stdin when omitted)")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the ERP backend token in the encrypted credentials file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		creds, err := openCredentials(cfg)
		if err != nil {
			return err
		}

		token := flagToken
		if token == "" {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("no token given: %w", err)
			}
			token = strings.TrimSpace(line)
		}
		if err := creds.SetToken(token); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "token saved to %s\n", cfg.CredentialsFile)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		creds, err := openCredentials(cfg)
		if err != nil {
			return err
		}
		if err := creds.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "logged out")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a token is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		creds, err := openCredentials(cfg)
		if err != nil {
			return err
		}
		_, err = creds.GetToken()
		switch {
		case errors.Is(err, apperrors.ErrUnauthenticated):
			fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
			return nil
		case err != nil:
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "logged in to %s\n", cfg.ERPBaseURL)
		return nil
	},
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Print a new key for the credentials file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := credentials.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}
