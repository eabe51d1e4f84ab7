// Package cli implements voucherctl, a terminal client for the voucher desk services.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/adapters/erpapi"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/adapters/export"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/config"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/credentials"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/repositories/memory"
	"github.com/spf13/cobra"
)

// cliOwner owns the transient drafts the CLI submits.
const cliOwner = "voucherctl"

var (
	flagERPURL          string
	flagCredentialsFile string
	flagCredentialsKey  string
	flagVerbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "voucherctl",
	Short: "Validate, submit and print Farm ERP vouchers",
	Long: `voucherctl drives the voucher desk from a terminal.
Vouchers are read from JSON or TOML files, checked with the same rules the
dashboard uses and posted to the ERP backend with a locally stored token.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagERPURL, "erp-url", "", "ERP backend base URL (default $ERP_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagCredentialsFile, "credentials-file", "", "Encrypted token file (default $CREDENTIALS_FILE or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagCredentialsKey, "credentials-key", "", "Hex key for the token file (default $CREDENTIALS_KEY)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// Root returns the voucherctl command tree.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs voucherctl and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flagERPURL != "" {
		cfg.ERPBaseURL = flagERPURL
	}
	if flagCredentialsFile != "" {
		cfg.CredentialsFile = flagCredentialsFile
	}
	if flagCredentialsKey != "" {
		cfg.CredentialsKey = flagCredentialsKey
	}
	if flagLocale != "" {
		cfg.NumberLocale = flagLocale
	}
	if cfg.CredentialsFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("no credentials file given and no user config dir: %w", err)
		}
		cfg.CredentialsFile = filepath.Join(dir, "voucherctl", "token")
	}
	return cfg, nil
}

// openCredentials opens the encrypted token file.
func openCredentials(cfg *config.Config) (*credentials.File, error) {
	if cfg.CredentialsKey == "" {
		return nil, fmt.Errorf("a credentials key is required, create one with 'voucherctl keygen' and set CREDENTIALS_KEY")
	}
	return credentials.NewFile(cfg.CredentialsFile, cfg.CredentialsKey)
}

// newServices wires the services the way the server does, with drafts kept in memory.
func newServices() (*portssvc.ServiceContainer, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	creds, err := openCredentials(cfg)
	if err != nil {
		return nil, err
	}
	backend := erpapi.NewClient(cfg.ERPBaseURL, cfg.ERPTimeout,
		erpapi.WithTokenSource(erpapi.NewCredentialTokenSource(creds)))

	return services.NewServiceContainer(cfg, memory.NewRepositoryProvider(backend), services.Infrastructure{
		Exporter:    export.NewXLSXExporter(),
		Credentials: creds,
	}), nil
}
