package snapshot

import (
	"context"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/invoicepilot/ledgercore/internal/ledger"
	"github.com/invoicepilot/ledgercore/internal/recon"
)

// Snapshot is one consistent, immutable view of the bookkeeping data.
// Concurrent statement requests against the same snapshot may run
// fully in parallel; writers always go through the repository and a
// fresh load.
type Snapshot struct {
	Registry  *ledger.Registry
	Store     *ledger.Store
	Documents []recon.SourceDocument

	// Fingerprint changes whenever the journal contents change; report
	// caches key on it so a stale view can never be served.
	Fingerprint string
}

// Service loads snapshots and posts journal entries.
type Service struct {
	repo Repository
}

// NewService constructs the snapshot service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load reads accounts, roles, journal entries, and source documents in
// parallel and assembles the snapshot.
func (s *Service) Load(ctx context.Context) (*Snapshot, error) {
	var (
		accounts []ledger.Account
		roles    map[ledger.AccountRole]string
		entries  []ledger.JournalEntry
		docs     []recon.SourceDocument
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.repo.ListAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		roles, err = s.repo.ListRoles(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.repo.ListJournalEntries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = s.repo.ListSourceDocuments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("snapshot: load: %w", err)
	}

	store := ledger.NewStore(entries)
	return &Snapshot{
		Registry:    ledger.NewRegistry(accounts, roles),
		Store:       store,
		Documents:   docs,
		Fingerprint: fingerprint(store),
	}, nil
}

// Post persists a journal entry. A duplicate ID surfaces as
// ledger.ErrDuplicateEntry, which is what makes re-posting a
// reconciled document fail loudly instead of double-posting.
func (s *Service) Post(ctx context.Context, entry ledger.JournalEntry) error {
	if entry.ID == "" {
		return ledger.ErrEmptyEntryID
	}
	return s.repo.InsertJournalEntry(ctx, entry)
}

// fingerprint hashes the ordered entry IDs and dates. Amounts are
// immutable once posted, so identity plus date pins the content.
func fingerprint(store *ledger.Store) string {
	h, _ := blake2b.New256(nil)
	for _, e := range store.EntriesInPeriod(ledger.Unbounded) {
		h.Write([]byte(e.ID))
		h.Write([]byte{0})
		h.Write([]byte(e.Date.Format("2006-01-02")))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
