// Package snapshot loads the point-in-time data the core computes
// over: chart of accounts, role mappings, journal entries, and source
// documents. Each load produces immutable values handed to the core
// for one request family and then discarded; the core itself never
// touches persistence.
package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
	"github.com/invoicepilot/ledgercore/internal/recon"
)

// Repository abstracts the reads and the single write (posting) the
// service needs.
type Repository interface {
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
	ListRoles(ctx context.Context) (map[ledger.AccountRole]string, error)
	ListJournalEntries(ctx context.Context) ([]ledger.JournalEntry, error)
	ListSourceDocuments(ctx context.Context) ([]recon.SourceDocument, error)
	InsertJournalEntry(ctx context.Context, entry ledger.JournalEntry) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs the postgres-backed repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, classification FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var accounts []ledger.Account
	for rows.Next() {
		var a ledger.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Classification); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *repository) ListRoles(ctx context.Context) (map[ledger.AccountRole]string, error) {
	rows, err := r.db.Query(ctx, `SELECT role, account_id FROM account_roles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	roles := make(map[ledger.AccountRole]string)
	for rows.Next() {
		var role ledger.AccountRole
		var accountID string
		if err := rows.Scan(&role, &accountID); err != nil {
			return nil, err
		}
		roles[role] = accountID
	}
	return roles, rows.Err()
}

func (r *repository) ListJournalEntries(ctx context.Context) ([]ledger.JournalEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT e.id, e.date, e.narration, l.account_id, l.side, l.amount
FROM journal_entries e
JOIN journal_lines l ON l.entry_id = e.id
ORDER BY e.date, e.id, l.line_no`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []ledger.JournalEntry
	index := make(map[string]int)
	for rows.Next() {
		var (
			id, narration, accountID, side string
			date                           time.Time
			amount                         decimal.Decimal
		)
		if err := rows.Scan(&id, &date, &narration, &accountID, &side, &amount); err != nil {
			return nil, err
		}
		idx, ok := index[id]
		if !ok {
			idx = len(entries)
			index[id] = idx
			entries = append(entries, ledger.JournalEntry{ID: id, Date: date, Narration: narration})
		}
		line := ledger.Line{AccountID: accountID, Amount: amount}
		if ledger.Side(side) == ledger.SideDebit {
			entries[idx].Debits = append(entries[idx].Debits, line)
		} else {
			entries[idx].Credits = append(entries[idx].Credits, line)
		}
	}
	return entries, rows.Err()
}

func (r *repository) ListSourceDocuments(ctx context.Context) ([]recon.SourceDocument, error) {
	rows, err := r.db.Query(ctx, `SELECT type, id, amount, date FROM source_documents ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var docs []recon.SourceDocument
	for rows.Next() {
		var d recon.SourceDocument
		if err := rows.Scan(&d.Type, &d.ID, &d.Amount, &d.Date); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

const uniqueViolation = "23505"

func (r *repository) InsertJournalEntry(ctx context.Context, entry ledger.JournalEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `INSERT INTO journal_entries (id, date, narration) VALUES ($1,$2,$3)`,
		entry.ID, entry.Date, entry.Narration); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ledger.ErrDuplicateEntry
		}
		return err
	}
	lineNo := 0
	insert := func(side ledger.Side, lines []ledger.Line) error {
		for _, l := range lines {
			lineNo++
			if _, err := tx.Exec(ctx, `INSERT INTO journal_lines (entry_id, line_no, account_id, side, amount) VALUES ($1,$2,$3,$4,$5)`,
				entry.ID, lineNo, l.AccountID, string(side), l.Amount); err != nil {
				return err
			}
		}
		return nil
	}
	if err := insert(ledger.SideDebit, entry.Debits); err != nil {
		return err
	}
	if err := insert(ledger.SideCredit, entry.Credits); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
