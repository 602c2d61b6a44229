package components

import (
	"invoice-service/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewInvoiceUseCase,
		usecase.NewTokenValidator,
	),
)
