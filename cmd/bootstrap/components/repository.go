package components

import (
	"context"

	"invoice-service/internal/infra/repository"
	"invoice-service/internal/infra/state"
	"invoice-service/internal/pkg/clock"
	"invoice-service/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewAccountRepository,
			fx.As(new(usecase.AccountRepository)),
		),
		fx.Annotate(
			NewInvoiceRepository,
			fx.As(new(usecase.InvoiceRepository)),
		),
	),
)

// Repositories load their persisted state once at startup.

func NewAccountRepository(store state.Store) (*repository.AccountRepository, error) {
	return repository.NewAccountRepository(context.Background(), store)
}

func NewInvoiceRepository(store state.Store, clk clock.Clock) (*repository.InvoiceRepository, error) {
	return repository.NewInvoiceRepository(context.Background(), store, clk)
}
