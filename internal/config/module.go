package config

import "go.uber.org/fx"

// Module loads configuration once per fx graph from .env, environment and flags.
var Module = fx.Provide(Load)
