package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Balance is the net debit/credit pair for one account.
type Balance struct {
	NetDebit  decimal.Decimal
	NetCredit decimal.Decimal
}

// Net returns the debit-positive net value.
func (b Balance) Net() decimal.Decimal {
	return b.NetDebit.Sub(b.NetCredit)
}

// IsZero reports whether both sides net out to nothing.
func (b Balance) IsZero() bool {
	return b.Net().IsZero()
}

// TrialBalanceRow pairs an account ID with its aggregated balance.
type TrialBalanceRow struct {
	AccountID string
	Balance
}

// TrialBalance is the per-account aggregation of all journal activity
// within a period, plus the data-quality diagnostics the aggregation
// observed along the way. Nothing here is an error: statements must
// always render something even over imperfect data.
type TrialBalance struct {
	rows  map[string]Balance
	order []string

	// UnresolvedRefs counts distinct accounts that journal legs name
	// but the registry does not know. Their legs still participate in
	// raw totals (so debit/credit symmetry stays observable) but are
	// excluded from category-based statements.
	UnresolvedRefs int
	// UnbalancedEntries lists IDs of entries whose own debit and credit
	// sums differ. Flagged, never corrected.
	UnbalancedEntries []string

	netProfit decimal.Decimal
}

// Aggregate collapses all journal activity within the period into one
// net debit/credit figure per account. Single pass, O(total legs); no
// registry lookups during accumulation, only afterwards for ordering,
// diagnostics, and the net profit figure.
func Aggregate(reg *Registry, store *Store, p Period) TrialBalance {
	tb := TrialBalance{rows: make(map[string]Balance)}
	for _, e := range store.EntriesInPeriod(p) {
		if !e.Balanced() {
			tb.UnbalancedEntries = append(tb.UnbalancedEntries, e.ID)
		}
		for _, l := range e.Debits {
			b := tb.rows[l.AccountID]
			b.NetDebit = b.NetDebit.Add(l.Amount)
			tb.rows[l.AccountID] = b
		}
		for _, l := range e.Credits {
			b := tb.rows[l.AccountID]
			b.NetCredit = b.NetCredit.Add(l.Amount)
			tb.rows[l.AccountID] = b
		}
	}

	// Registry order first, then unknown references by ID, so the row
	// sequence is deterministic for a given snapshot.
	seen := make(map[string]bool, len(tb.rows))
	for _, acc := range reg.Accounts() {
		if _, ok := tb.rows[acc.ID]; ok {
			tb.order = append(tb.order, acc.ID)
			seen[acc.ID] = true
		}
	}
	var unknown []string
	for id := range tb.rows {
		if !seen[id] {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	tb.order = append(tb.order, unknown...)

	profit := decimal.Zero
	for id, b := range tb.rows {
		switch reg.CategoryOf(id) {
		case CategoryIncome:
			profit = profit.Add(b.NetCredit.Sub(b.NetDebit))
		case CategoryExpense:
			profit = profit.Sub(b.NetDebit.Sub(b.NetCredit))
		case CategoryNone:
			tb.UnresolvedRefs++
		}
	}
	tb.netProfit = profit
	return tb
}

// Balance returns the aggregated pair for the account, zero when the
// account saw no activity in the period.
func (tb TrialBalance) Balance(accountID string) Balance {
	return tb.rows[accountID]
}

// Rows returns all aggregated rows in deterministic order.
func (tb TrialBalance) Rows() []TrialBalanceRow {
	rows := make([]TrialBalanceRow, 0, len(tb.order))
	for _, id := range tb.order {
		rows = append(rows, TrialBalanceRow{AccountID: id, Balance: tb.rows[id]})
	}
	return rows
}

// Totals sums net debits and net credits across every account,
// including unresolved references.
func (tb TrialBalance) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, b := range tb.rows {
		debit = debit.Add(b.NetDebit)
		credit = credit.Add(b.NetCredit)
	}
	return debit, credit
}

// Balanced reports whether total debits equal total credits exactly.
// It holds whenever every contributing entry is individually balanced.
func (tb TrialBalance) Balanced() bool {
	debit, credit := tb.Totals()
	return debit.Equal(credit)
}

// NetProfit is income minus expense for the period:
// sum(Income: credit-debit) - sum(Expense: debit-credit). Negative
// means a net loss. Legs on unknown accounts contribute nothing.
func (tb TrialBalance) NetProfit() decimal.Decimal {
	return tb.netProfit
}
