package realtime

import (
	"tracenfind/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the hub and binds it to the presentation sinks.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHub,
		func(h *Hub) service.BadgeSink { return h },
		func(h *Hub) service.SoundPlayer { return h },
		func(h *Hub) service.Notifier { return h },
	),
)
