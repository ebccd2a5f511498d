// Package cmd contains the subcommands of the mapo binary.
package cmd

import (
	"time"

	"github.com/MAPO-UPTC/mapo-cli/api"
	"github.com/MAPO-UPTC/mapo-cli/cli"
	"github.com/MAPO-UPTC/mapo-cli/config"
	"github.com/MAPO-UPTC/mapo-cli/errors"
	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"github.com/MAPO-UPTC/mapo-cli/session"
	"github.com/MAPO-UPTC/mapo-cli/store"
	"github.com/spf13/cobra"
)

// newStore wires config, session, API client, and store for a command run.
func newStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if cfg.API.BaseURL == "" {
		return nil, nil, errors.ConfigInvalid("api.base_url is required (or set MAPO_API_URL)")
	}

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		api.WithTokenSource(session.Token),
		// A rejected token means the stored session is dead regardless of
		// what this command was doing.
		api.WithUnauthorizedHook(func() { _ = session.Clear() }),
	)

	s := store.New(client,
		store.WithPageSize(cfg.Sales.PageSize),
		store.WithCurrency(cfg.Currency),
	)

	// Restore the persisted profile so role checks work offline.
	if sess, err := session.Load(); err == nil && sess != nil {
		s.SetUser(&sess.User)
	}

	return s, cfg, nil
}

// requireSession fails fast when no session is persisted, before any
// network round-trip that would 401 anyway.
func requireSession() error {
	sess, err := session.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		return errors.New(errors.ErrCodeSessionNotFound, "not logged in, run 'mapo login' first")
	}
	return nil
}

// requireRole checks the persisted profile's role against allowed before a
// mutating command reaches the backend. The backend enforces the same rule
// authoritatively; failing here just gives a clearer error without the
// round-trip.
func requireRole(allowed func(models.Role) bool, action string) error {
	sess, err := session.Load()
	if err != nil {
		return err
	}
	if sess == nil {
		return errors.New(errors.ErrCodeSessionNotFound, "not logged in, run 'mapo login' first")
	}
	if !allowed(sess.User.Role) {
		return errors.Forbidden(string(sess.User.Role), action)
	}
	return nil
}
