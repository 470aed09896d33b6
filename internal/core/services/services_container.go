package services

import (
	portsrepo "github.com/SscSPs/trade_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trade_ledger/internal/core/ports/services"
	"github.com/SscSPs/trade_ledger/internal/core/engine"
	"github.com/SscSPs/trade_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(
		repos.EventRepo,
		WithRules(engine.Rules{
			PaidTolerance:  cfg.PaidTolerance,
			DraftReference: cfg.DraftReference,
		}),
		WithDefaultTaxRate(cfg.DefaultTaxRate),
	)

	// Reports only read snapshots, so they go through the ledger reader.
	container.Reporting = NewReportingService(container.Ledger)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade = (*ledgerService)(nil)
	_ portssvc.ReportingSvc    = (*reportingService)(nil)
)
