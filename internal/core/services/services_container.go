package services

import (
	"log/slog"

	portsrepo "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/repositories"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/platform/config"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/numfmt"
)

// Infrastructure carries the adapters the services are wired to.
// Nil members fall back to in-process defaults.
type Infrastructure struct {
	Guard       portssvc.SubmissionGuard
	Exporter    portssvc.PrintExporter
	Credentials portssvc.CredentialProvider
	Observer    SubmissionObserver
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, infra Infrastructure) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{Credentials: infra.Credentials}

	formatter, err := numfmt.New(cfg.NumberLocale)
	if err != nil {
		slog.Warn("Unsupported NUMBER_LOCALE, using default",
			slog.String("locale", cfg.NumberLocale),
			slog.String("error", err.Error()))
		formatter = numfmt.Default()
	} else {
		numfmt.SetDefault(formatter)
	}

	validator := NewValidator(
		WithValidatorLocation(cfg.Location),
		WithValidatorFormatter(formatter),
	)

	container.Reference = NewReferenceService(repos.Backend, cfg.ReferenceCacheTTL)
	container.Print = NewPrintService(
		infra.Exporter,
		WithPrintFormatter(formatter),
		WithPrintArchive(cfg.PrintArchiveSize, cfg.PrintArchiveTTL),
	)
	container.Vouchers = NewVoucherService(repos.Backend, WithVoucherValidator(validator))

	// The draft service prints through the reference and print services, so it goes last.
	container.Drafts = NewDraftService(
		repos.DraftRepo,
		repos.Backend,
		container.Reference,
		container.Print,
		WithSubmissionGuard(infra.Guard),
		WithDraftValidator(validator),
		WithNumberFormatter(formatter),
		WithSubmissionObserver(infra.Observer),
	)

	return container
}
