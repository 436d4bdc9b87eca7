// Package ledger holds the double-entry core: the chart of accounts
// registry, the journal store, the ledger projector, and the trial
// balance aggregator. Everything here is a pure function of an
// immutable per-request snapshot; degraded data (unknown accounts,
// unbalanced entries) is surfaced as values, never as errors.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Category enumerates the fixed top-level account categories.
type Category string

const (
	CategoryAsset     Category = "ASSET"
	CategoryLiability Category = "LIABILITY"
	CategoryEquity    Category = "EQUITY"
	CategoryIncome    Category = "INCOME"
	CategoryExpense   Category = "EXPENSE"
	// CategoryNone is the sentinel for references to unknown accounts.
	CategoryNone Category = ""
)

// DebitSign returns the debit-positive sign convention for the category:
// +1 for Asset and Expense, -1 for Liability, Equity, and Income, 0 for
// the unknown sentinel. Every component consumes this single table
// instead of re-deriving the convention per call site.
func (c Category) DebitSign() int {
	switch c {
	case CategoryAsset, CategoryExpense:
		return 1
	case CategoryLiability, CategoryEquity, CategoryIncome:
		return -1
	}
	return 0
}

// AccountRole names the well-known special accounts set once by the
// chart-of-accounts collaborator.
type AccountRole string

const (
	RoleCashAndBank  AccountRole = "CASH_AND_BANK"
	RoleSales        AccountRole = "SALES"
	RolePurchases    AccountRole = "PURCHASES"
	RoleOpeningStock AccountRole = "OPENING_STOCK"
	RoleClosingStock AccountRole = "CLOSING_STOCK"
)

// Account models a chart of accounts node. Category is fixed for the
// account's lifetime; Classification is a free-form display grouping
// label subordinate to the category.
type Account struct {
	ID             string
	Name           string
	Category       Category
	Classification string
}

// Line is one debit or credit leg of a journal entry.
type Line struct {
	AccountID string
	Amount    decimal.Decimal
}

// JournalEntry is a dated double-entry record. Entries are created by
// an external posting process and are immutable here; the core assumes
// each entry is individually balanced and only flags violations.
type JournalEntry struct {
	ID        string
	Date      time.Time
	Narration string
	Debits    []Line
	Credits   []Line
}

// DebitTotal sums the entry's debit legs.
func (e JournalEntry) DebitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Debits {
		total = total.Add(l.Amount)
	}
	return total
}

// CreditTotal sums the entry's credit legs.
func (e JournalEntry) CreditTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Credits {
		total = total.Add(l.Amount)
	}
	return total
}

// Balanced reports whether debit and credit totals match exactly.
func (e JournalEntry) Balanced() bool {
	return e.DebitTotal().Equal(e.CreditTotal())
}

// Side distinguishes the two legs of an entry.
type Side string

const (
	SideDebit  Side = "DEBIT"
	SideCredit Side = "CREDIT"
)

// Period is an optional inclusive date range. A nil From means "from
// the beginning of recorded history"; a nil To means "through the
// latest entry".
type Period struct {
	From *time.Time
	To   *time.Time
}

// Unbounded is the zero period covering all recorded history.
var Unbounded = Period{}

// Contains reports whether the date falls inside the period. Only the
// calendar day matters; time-of-day components are ignored.
func (p Period) Contains(date time.Time) bool {
	day := truncateDay(date)
	if p.From != nil && day.Before(truncateDay(*p.From)) {
		return false
	}
	if p.To != nil && day.After(truncateDay(*p.To)) {
		return false
	}
	return true
}

// Before returns the period ending the day before this period starts,
// used to seed opening balances. The second value is false when the
// period has no lower bound and therefore no prior window exists.
func (p Period) Before() (Period, bool) {
	if p.From == nil {
		return Period{}, false
	}
	end := truncateDay(*p.From).AddDate(0, 0, -1)
	return Period{To: &end}, true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var (
	// ErrDuplicateEntry indicates an entry ID already present in the store.
	ErrDuplicateEntry = errors.New("ledger: duplicate journal entry id")
	// ErrEmptyEntryID indicates an entry without an identifier.
	ErrEmptyEntryID = errors.New("ledger: journal entry id required")
)
