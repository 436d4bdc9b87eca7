package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerRow is one line of a single-account general ledger view.
type LedgerRow struct {
	Date        string          `json:"date"`
	EntryID     string          `json:"entryId"`
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

const ledgerDateLayout = "2006-01-02"

// Project replays the account's journal legs in chronological order and
// produces the running-balance sequence. The balance accumulates with
// the category's debit-positive sign, so an Income account grows on
// credits while an Asset account grows on debits. An unknown account ID
// yields an empty sequence, not an error: ledger views degrade
// gracefully when accounts are removed out from under references.
//
// The result is a prefix sum recomputed from scratch on every call;
// nothing is cached or mutated, so repeated calls with the same inputs
// are identical.
func Project(reg *Registry, store *Store, accountID string, p Period) []LedgerRow {
	acc, ok := reg.Lookup(accountID)
	if !ok {
		return nil
	}
	sign := acc.Category.DebitSign()

	matches := store.EntriesForAccount(accountID, p)
	rows := make([]LedgerRow, 0, len(matches))
	balance := decimal.Zero
	for _, m := range matches {
		row := LedgerRow{
			Date:        m.Entry.Date.Format(ledgerDateLayout),
			EntryID:     m.Entry.ID,
			Particulars: particulars(reg, m),
		}
		switch m.Side {
		case SideDebit:
			row.Debit = m.Line.Amount
			balance = balance.Add(m.Line.Amount.Mul(decimal.NewFromInt(int64(sign))))
		case SideCredit:
			row.Credit = m.Line.Amount
			balance = balance.Sub(m.Line.Amount.Mul(decimal.NewFromInt(int64(sign))))
		}
		row.Balance = balance
		rows = append(rows, row)
	}
	return rows
}

// ClosingBalance returns the final running balance for the account over
// the period, zero when no legs match.
func ClosingBalance(reg *Registry, store *Store, accountID string, p Period) decimal.Decimal {
	rows := Project(reg, store, accountID, p)
	if len(rows) == 0 {
		return decimal.Zero
	}
	return rows[len(rows)-1].Balance
}

// particulars synthesizes the display text for a ledger row from the
// opposite side of the same entry: a debit row names the credited
// accounts and vice versa, followed by the entry narration.
func particulars(reg *Registry, m AccountEntry) string {
	opposite := m.Entry.Credits
	if m.Side == SideCredit {
		opposite = m.Entry.Debits
	}
	names := make([]string, 0, len(opposite))
	for _, l := range opposite {
		names = append(names, reg.NameOf(l.AccountID))
	}
	text := strings.Join(names, ", ")
	if m.Entry.Narration != "" {
		if text != "" {
			text += " - " + m.Entry.Narration
		} else {
			text = m.Entry.Narration
		}
	}
	return text
}
