package statements

import (
	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

// TrialBalanceLine is one presentable trial balance row.
type TrialBalanceLine struct {
	AccountID string          `json:"accountId"`
	Name      string          `json:"name"`
	Category  ledger.Category `json:"category,omitempty"`
	NetDebit  decimal.Decimal `json:"netDebit"`
	NetCredit decimal.Decimal `json:"netCredit"`
}

// TrialBalanceView is the presentable trial balance with totals and
// data-quality diagnostics.
type TrialBalanceView struct {
	Lines             []TrialBalanceLine `json:"lines"`
	TotalDebit        decimal.Decimal    `json:"totalDebit"`
	TotalCredit       decimal.Decimal    `json:"totalCredit"`
	Balanced          bool               `json:"balanced"`
	UnresolvedRefs    int                `json:"unresolvedRefs,omitempty"`
	UnbalancedEntries []string           `json:"unbalancedEntries,omitempty"`
}

// TrialBalance resolves display names and categories onto the
// aggregator's rows. Unknown references keep their raw ID as the name
// and an empty category.
func (c *Composer) TrialBalance(p ledger.Period) TrialBalanceView {
	tb := ledger.Aggregate(c.Registry, c.Store, p)

	lines := make([]TrialBalanceLine, 0, len(tb.Rows()))
	for _, row := range tb.Rows() {
		lines = append(lines, TrialBalanceLine{
			AccountID: row.AccountID,
			Name:      c.Registry.NameOf(row.AccountID),
			Category:  c.Registry.CategoryOf(row.AccountID),
			NetDebit:  row.NetDebit,
			NetCredit: row.NetCredit,
		})
	}
	debit, credit := tb.Totals()
	return TrialBalanceView{
		Lines:             lines,
		TotalDebit:        debit,
		TotalCredit:       credit,
		Balanced:          tb.Balanced(),
		UnresolvedRefs:    tb.UnresolvedRefs,
		UnbalancedEntries: tb.UnbalancedEntries,
	}
}
