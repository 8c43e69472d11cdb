package orderservice

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderboard/internal/config"
)

// Module exposes the order service client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	client, err := NewHTTPClient(p.Config.OrderServiceAddress, p.Config.UpstreamTimeout, p.Logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
