package usecase

import "go.uber.org/fx"

// Module provides account use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
)
