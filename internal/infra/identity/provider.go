package identity

import (
	"context"
	"log/slog"

	"recipefinder/config"
	"recipefinder/internal/domain/constants"
	"recipefinder/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the identity provider, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityProvider selects the token verifier named by identity.provider.
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.Identity
	if cfg == nil {
		return nil, errors.New("identity configuration is required")
	}

	switch cfg.Provider {
	case constants.IdentityProviderFirebase:
		params.Logger.Info("Using Firebase identity provider", slog.String("project_id", cfg.Firebase.ProjectID))

		return NewFirebaseProvider(params.Ctx, cfg.Firebase)
	case constants.IdentityProviderJWT, "":
		params.Logger.Info("Using JWT identity provider", slog.String("issuer", cfg.JWT.Issuer))

		provider, err := NewJWTProvider(cfg.JWT)
		if err != nil {
			return nil, err
		}

		return provider, nil
	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}
