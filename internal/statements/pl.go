package statements

import (
	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

// ProfitAndLossSection groups accounts of one nature.
type ProfitAndLossSection struct {
	Groups []Group         `json:"groups"`
	Total  decimal.Decimal `json:"total"`
}

// ProfitAndLoss is the structured P&L view.
type ProfitAndLoss struct {
	Income         ProfitAndLossSection `json:"income"`
	Expense        ProfitAndLossSection `json:"expense"`
	NetProfit      decimal.Decimal      `json:"netProfit"`
	UnresolvedRefs int                  `json:"unresolvedRefs,omitempty"`
}

// ProfitAndLoss groups Income and Expense activity by classification.
// Income amounts are credit-positive, expense amounts debit-positive,
// so both sections present positive figures in the normal case.
func (c *Composer) ProfitAndLoss(p ledger.Period) ProfitAndLoss {
	tb := ledger.Aggregate(c.Registry, c.Store, p)

	income := newGrouping()
	expense := newGrouping()
	for _, acc := range c.Registry.Accounts() {
		b := tb.Balance(acc.ID)
		if b.IsZero() {
			continue
		}
		switch acc.Category {
		case ledger.CategoryIncome:
			income.add(classificationOf(acc), Row{
				AccountID: acc.ID,
				Name:      acc.Name,
				Amount:    b.NetCredit.Sub(b.NetDebit),
			})
		case ledger.CategoryExpense:
			expense.add(classificationOf(acc), Row{
				AccountID: acc.ID,
				Name:      acc.Name,
				Amount:    b.Net(),
			})
		}
	}

	incomeGroups, totalIncome := income.result()
	expenseGroups, totalExpense := expense.result()
	return ProfitAndLoss{
		Income:         ProfitAndLossSection{Groups: incomeGroups, Total: totalIncome},
		Expense:        ProfitAndLossSection{Groups: expenseGroups, Total: totalExpense},
		NetProfit:      tb.NetProfit(),
		UnresolvedRefs: tb.UnresolvedRefs,
	}
}
