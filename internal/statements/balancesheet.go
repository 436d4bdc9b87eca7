package statements

import (
	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

// Labels for the synthetic net profit/loss fold-in lines. Profit is
// carried into the Capital group on the liabilities side; a loss that
// has not yet been absorbed by capital is carried forward as a
// debit-side (assets) item.
const (
	netProfitLabel      = "Net Profit"
	netLossLabel        = "Net Loss"
	capitalGroupLabel   = "Capital"
	miscExpenditureName = "Miscellaneous Expenditure"
)

// BalanceSheetSide is one of the two statement sides, grouped by
// classification.
type BalanceSheetSide struct {
	Groups []Group         `json:"groups"`
	Total  decimal.Decimal `json:"total"`
}

// BalanceSheet is the structured balance sheet view.
type BalanceSheet struct {
	Liabilities    BalanceSheetSide `json:"liabilities"`
	Assets         BalanceSheetSide `json:"assets"`
	Difference     decimal.Decimal  `json:"difference"`
	Balanced       bool             `json:"balanced"`
	UnresolvedRefs int              `json:"unresolvedRefs,omitempty"`
}

// BalanceSheet splits the trial balance into a liabilities side
// (Liability and Equity categories, credit balances positive) and an
// assets side (Asset category, debit balances positive), folds the
// period's net profit or loss into the appropriate side, and reports
// whether the two sides tally. Accounts with a zero net value are
// omitted. An empty trial balance yields an all-zero, balanced sheet.
func (c *Composer) BalanceSheet(p ledger.Period) BalanceSheet {
	tb := ledger.Aggregate(c.Registry, c.Store, p)

	liabilities := newGrouping()
	assets := newGrouping()
	for _, acc := range c.Registry.Accounts() {
		b := tb.Balance(acc.ID)
		if b.IsZero() {
			continue
		}
		switch acc.Category {
		case ledger.CategoryLiability, ledger.CategoryEquity:
			liabilities.add(classificationOf(acc), Row{
				AccountID: acc.ID,
				Name:      acc.Name,
				Amount:    b.NetCredit.Sub(b.NetDebit),
			})
		case ledger.CategoryAsset:
			assets.add(classificationOf(acc), Row{
				AccountID: acc.ID,
				Name:      acc.Name,
				Amount:    b.Net(),
			})
		}
	}

	if profit := tb.NetProfit(); profit.IsPositive() {
		liabilities.add(capitalGroupLabel, Row{Name: netProfitLabel, Amount: profit})
	} else if profit.IsNegative() {
		assets.add(miscExpenditureName, Row{Name: netLossLabel, Amount: profit.Neg()})
	}

	liabilityGroups, totalLiabilities := liabilities.result()
	assetGroups, totalAssets := assets.result()
	difference := totalAssets.Sub(totalLiabilities)
	return BalanceSheet{
		Liabilities:    BalanceSheetSide{Groups: liabilityGroups, Total: totalLiabilities},
		Assets:         BalanceSheetSide{Groups: assetGroups, Total: totalAssets},
		Difference:     difference,
		Balanced:       difference.Round(0).IsZero(),
		UnresolvedRefs: tb.UnresolvedRefs,
	}
}
