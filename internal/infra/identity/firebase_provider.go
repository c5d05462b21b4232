package identity

import (
	"context"

	"recipefinder/config"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// firebaseProvider verifies Firebase Authentication ID tokens.
type firebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider creates a Firebase Auth client. Without a credentials path the
// SDK falls back to application default credentials.
func NewFirebaseProvider(ctx context.Context, cfg config.FirebaseConfig) (service.IdentityProvider, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseProvider{
		client: client,
	}, nil
}

// Verify validates an ID token and returns the Firebase UID as the user id.
func (p *firebaseProvider) Verify(ctx context.Context, token string) (*service.Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("empty token")
	}

	verified, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}

	identity := &service.Identity{UserID: verified.UID}
	if email, ok := verified.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
