package main

import (
	"context"
	"fmt"
	"io"

	"recipefinder/internal/domain/service"
	"recipefinder/internal/errors"
	"recipefinder/internal/infra/identity"
	logs "recipefinder/internal/infra/log"

	"github.com/spf13/cobra"
)

// tokenCommand creates the token subcommand, which mints development bearer tokens
func tokenCommand(loadConfig configLoader) *cobra.Command {
	var userID, email string

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			logger, err := logs.NewWithWriter(cfg, cmd.ErrOrStderr())
			if err != nil {
				return errors.Wrap(err, "failed to create logger")
			}

			provider, err := identity.NewIdentityProvider(identity.Params{
				Ctx:    context.Background(),
				Config: cfg,
				Logger: logger,
			})
			if err != nil {
				return errors.Wrap(err, "failed to create identity provider")
			}

			issuer, ok := provider.(service.TokenIssuer)
			if !ok {
				return errors.Errorf("identity provider %q cannot issue tokens", cfg.Identity.Provider)
			}

			return writeToken(cmd.OutOrStdout(), issuer, service.Identity{UserID: userID, Email: email})
		},
	}

	tokenCmd.Flags().StringVar(&userID, "user", "", "User ID carried by the token")
	tokenCmd.Flags().StringVar(&email, "email", "", "Email carried by the token")
	_ = tokenCmd.MarkFlagRequired("user")

	return tokenCmd
}

// writeToken mints a token for identity and prints it on its own line.
func writeToken(w io.Writer, issuer service.TokenIssuer, identity service.Identity) error {
	token, err := issuer.Issue(identity)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	_, err = fmt.Fprintln(w, token)

	return errors.WithStack(err)
}
