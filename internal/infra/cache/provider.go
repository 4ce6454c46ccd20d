package cache

import (
	"context"
	"log/slog"

	"tracenfind/config"
	"tracenfind/internal/domain/constants"
	"tracenfind/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ClaimerParams holds dependencies for the SignatureClaimer
type ClaimerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSignatureClaimer returns the configured claimer, or nil when claiming is disabled.
func NewSignatureClaimer(params ClaimerParams) (service.SignatureClaimer, error) {
	provider := constants.ClaimProviderNone
	if params.Config.Claim != nil && params.Config.Claim.Provider != "" {
		provider = params.Config.Claim.Provider
	}

	switch provider {
	case constants.ClaimProviderNone:
		params.Logger.Info("[Claim] signature claiming disabled")

		return nil, nil

	case constants.ClaimProviderMemory:
		params.Logger.Info("[Claim] using in-process signature claims")

		return NewMemoryClaimer(), nil

	case constants.ClaimProviderRedis:
		client, err := NewRedisClient(params.Ctx, params.Config.Redis)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		params.Logger.Info("[Claim] using redis signature claims", slog.String("addr", params.Config.Redis.Addr))

		return NewRedisClaimer(client, params.Config.Redis.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown claim provider: %s", provider)
	}
}

// Module provides the claim store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSignatureClaimer),
)
