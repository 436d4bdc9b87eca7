package statements

import (
	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

// Classification label identifying expense accounts that belong on the
// trading account's debit side alongside purchases.
const directExpensesClassification = "Direct Expenses"

// StockFigures are externally supplied opening and closing stock
// valuations. The engine never infers stock valuation; when the trial
// balance comes from an uploaded external source these are constants
// provided by the caller, and absent figures stay zero.
type StockFigures struct {
	Opening decimal.Decimal `json:"opening"`
	Closing decimal.Decimal `json:"closing"`
}

// TradingAccount is the restricted two-sided trading view.
type TradingAccount struct {
	OpeningStock   decimal.Decimal `json:"openingStock"`
	Purchases      decimal.Decimal `json:"purchases"`
	DirectExpenses []Row           `json:"directExpenses"`
	DebitTotal     decimal.Decimal `json:"debitTotal"`

	Sales        decimal.Decimal `json:"sales"`
	ClosingStock decimal.Decimal `json:"closingStock"`
	CreditTotal  decimal.Decimal `json:"creditTotal"`

	GrossProfit decimal.Decimal `json:"grossProfit"`
}

// TradingAccount restricts the view to sales, purchases, direct
// expenses, and the supplied stock figures. Sales and purchases come
// from the explicit account-role mapping, not from name matching;
// direct expenses are Expense accounts classified "Direct Expenses".
// Gross profit = (sales + closing stock) - (opening stock + purchases
// + direct expenses).
func (c *Composer) TradingAccount(p ledger.Period, stock StockFigures) TradingAccount {
	tb := ledger.Aggregate(c.Registry, c.Store, p)

	ta := TradingAccount{
		OpeningStock:   stock.Opening,
		Purchases:      decimal.Zero,
		DirectExpenses: []Row{},
		Sales:          decimal.Zero,
		ClosingStock:   stock.Closing,
	}
	if sales, ok := c.Registry.ByRole(ledger.RoleSales); ok {
		b := tb.Balance(sales.ID)
		ta.Sales = b.NetCredit.Sub(b.NetDebit)
	}
	var purchasesID string
	if purchases, ok := c.Registry.ByRole(ledger.RolePurchases); ok {
		purchasesID = purchases.ID
		ta.Purchases = tb.Balance(purchases.ID).Net()
	}

	directTotal := decimal.Zero
	for _, acc := range c.Registry.Accounts() {
		if acc.Category != ledger.CategoryExpense || acc.ID == purchasesID {
			continue
		}
		if acc.Classification != directExpensesClassification {
			continue
		}
		b := tb.Balance(acc.ID)
		if b.IsZero() {
			continue
		}
		row := Row{AccountID: acc.ID, Name: acc.Name, Amount: b.Net()}
		ta.DirectExpenses = append(ta.DirectExpenses, row)
		directTotal = directTotal.Add(row.Amount)
	}

	ta.DebitTotal = ta.OpeningStock.Add(ta.Purchases).Add(directTotal)
	ta.CreditTotal = ta.Sales.Add(ta.ClosingStock)
	ta.GrossProfit = ta.CreditTotal.Sub(ta.DebitTotal)
	return ta
}
