package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idolplan/idolplan/internal/account"
	"github.com/idolplan/idolplan/internal/catalog"
	"github.com/idolplan/idolplan/internal/config"
	"github.com/idolplan/idolplan/internal/store"
)

// session is the state one command works on: the catalog, the account
// library and the account currently being edited. It is owned by the
// command and passed explicitly.
type session struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	store   *store.Store
	name    string
	account *account.Account
}

// openSession loads the catalog and the selected account. A catalog that
// cannot be enumerated is fatal; a missing account starts out empty.
func openSession(cmd *cobra.Command) (*session, error) {
	s, err := openLibrary(cmd)
	if err != nil {
		return nil, err
	}

	s.catalog, err = catalog.LoadCatalog(s.cfg.CatalogPath)
	if err != nil {
		s.close()
		return nil, err
	}

	s.account, err = s.store.Load(cmd.Context(), s.name)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("account", s.name).Msg("starting a new account")
		s.account = account.New()
		err = nil
	}
	if err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

// openLibrary opens only the account store, for commands that never touch cards
func openLibrary(cmd *cobra.Command) (*session, error) {
	name, _ := cmd.Flags().GetString("account")
	if name == "" {
		name = appConfig.DefaultAccount
	}

	st, err := store.Open(store.DefaultConfig(appConfig.StorePath))
	if err != nil {
		return nil, err
	}
	return &session{cfg: appConfig, store: st, name: name}, nil
}

func (s *session) save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.name, s.account); err != nil {
		return fmt.Errorf("error saving account: %w", err)
	}
	return nil
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		log.Warn().Err(err).Msg("closing account store")
	}
}

// resolveCard turns a lemma or ordinal argument into a catalog ordinal
func (s *session) resolveCard(id string) (uint32, string, error) {
	entry, err := s.catalog.GetCard(id)
	if err != nil {
		return 0, "", err
	}
	lemma, _ := s.catalog.Lemma(entry.Ordinal)
	return entry.Ordinal, lemma, nil
}
