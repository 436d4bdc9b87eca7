package statements

import (
	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

// Activity names a cash flow bucket.
type Activity string

const (
	ActivityOperating Activity = "OPERATING"
	ActivityInvesting Activity = "INVESTING"
	ActivityFinancing Activity = "FINANCING"
)

// CashFlowBucket sums one activity's effect on cash.
type CashFlowBucket struct {
	Activity Activity        `json:"activity"`
	Rows     []Row           `json:"rows"`
	Total    decimal.Decimal `json:"total"`
}

// CashFlow is the structured cash flow view.
type CashFlow struct {
	OpeningCash    decimal.Decimal `json:"openingCash"`
	Operating      CashFlowBucket  `json:"operating"`
	Investing      CashFlowBucket  `json:"investing"`
	Financing      CashFlowBucket  `json:"financing"`
	NetChange      decimal.Decimal `json:"netChange"`
	ClosingCash    decimal.Decimal `json:"closingCash"`
	UnresolvedRefs int             `json:"unresolvedRefs,omitempty"`
}

// CashFlow buckets non-cash activity into operating (income and
// expense), investing (non-cash assets), and financing (liabilities
// and equity). Each account contributes netCredit - netDebit: the
// counterpart of the cash movement it caused, so for balanced input
// closing cash equals opening cash plus the three bucket totals
// exactly. Opening cash is the cash account's running balance as of
// the day before the period starts (zero for an unbounded period).
func (c *Composer) CashFlow(p ledger.Period) CashFlow {
	tb := ledger.Aggregate(c.Registry, c.Store, p)

	cashID := ""
	if cash, ok := c.Registry.ByRole(ledger.RoleCashAndBank); ok {
		cashID = cash.ID
	}

	operating := CashFlowBucket{Activity: ActivityOperating, Rows: []Row{}, Total: decimal.Zero}
	investing := CashFlowBucket{Activity: ActivityInvesting, Rows: []Row{}, Total: decimal.Zero}
	financing := CashFlowBucket{Activity: ActivityFinancing, Rows: []Row{}, Total: decimal.Zero}
	for _, acc := range c.Registry.Accounts() {
		if acc.ID == cashID {
			continue
		}
		b := tb.Balance(acc.ID)
		if b.IsZero() {
			continue
		}
		row := Row{AccountID: acc.ID, Name: acc.Name, Amount: b.NetCredit.Sub(b.NetDebit)}
		var bucket *CashFlowBucket
		switch acc.Category {
		case ledger.CategoryIncome, ledger.CategoryExpense:
			bucket = &operating
		case ledger.CategoryAsset:
			bucket = &investing
		case ledger.CategoryLiability, ledger.CategoryEquity:
			bucket = &financing
		default:
			continue
		}
		bucket.Rows = append(bucket.Rows, row)
		bucket.Total = bucket.Total.Add(row.Amount)
	}

	opening := decimal.Zero
	if cashID != "" {
		if before, ok := p.Before(); ok {
			opening = ledger.ClosingBalance(c.Registry, c.Store, cashID, before)
		}
	}
	netChange := operating.Total.Add(investing.Total).Add(financing.Total)
	return CashFlow{
		OpeningCash:    opening,
		Operating:      operating,
		Investing:      investing,
		Financing:      financing,
		NetChange:      netChange,
		ClosingCash:    opening.Add(netChange),
		UnresolvedRefs: tb.UnresolvedRefs,
	}
}
