package statements

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

func tradingEntries() []ledger.JournalEntry {
	return []ledger.JournalEntry{
		{
			ID:      "JE-INV-100",
			Date:    day(2),
			Debits:  []ledger.Line{{AccountID: "acc-cash", Amount: d("9000")}},
			Credits: []ledger.Line{{AccountID: "acc-sales", Amount: d("9000")}},
		},
		{
			ID:      "JE-BILL-100",
			Date:    day(3),
			Debits:  []ledger.Line{{AccountID: "acc-purchases", Amount: d("4000")}},
			Credits: []ledger.Line{{AccountID: "acc-cash", Amount: d("4000")}},
		},
		{
			ID:      "JE-FRT-100",
			Date:    day(4),
			Debits:  []ledger.Line{{AccountID: "acc-freight", Amount: d("300")}},
			Credits: []ledger.Line{{AccountID: "acc-cash", Amount: d("300")}},
		},
		{
			ID:      "JE-RENT-100",
			Date:    day(5),
			Debits:  []ledger.Line{{AccountID: "acc-rent", Amount: d("500")}},
			Credits: []ledger.Line{{AccountID: "acc-cash", Amount: d("500")}},
		},
	}
}

func TestTradingAccountGrossProfit(t *testing.T) {
	stock := StockFigures{Opening: d("1000"), Closing: d("1500")}
	ta := fixtureComposer(tradingEntries()).TradingAccount(ledger.Unbounded, stock)

	assert.True(t, ta.OpeningStock.Equal(d("1000")))
	assert.True(t, ta.Purchases.Equal(d("4000")))
	require.Len(t, ta.DirectExpenses, 1)
	assert.Equal(t, "Freight Inward", ta.DirectExpenses[0].Name)
	assert.True(t, ta.DebitTotal.Equal(d("5300")))

	assert.True(t, ta.Sales.Equal(d("9000")))
	assert.True(t, ta.ClosingStock.Equal(d("1500")))
	assert.True(t, ta.CreditTotal.Equal(d("10500")))

	// (9000 + 1500) - (1000 + 4000 + 300)
	assert.True(t, ta.GrossProfit.Equal(d("5200")))
}

func TestTradingAccountExcludesIndirectExpenses(t *testing.T) {
	ta := fixtureComposer(tradingEntries()).TradingAccount(ledger.Unbounded, StockFigures{})

	for _, row := range ta.DirectExpenses {
		assert.NotEqual(t, "acc-rent", row.AccountID)
	}
}

func TestTradingAccountPurchasesNotDoubleCounted(t *testing.T) {
	// Purchases is classified "Direct Expenses" but must appear only in
	// the dedicated purchases figure, never in the direct-expense rows.
	ta := fixtureComposer(tradingEntries()).TradingAccount(ledger.Unbounded, StockFigures{})

	for _, row := range ta.DirectExpenses {
		assert.NotEqual(t, "acc-purchases", row.AccountID)
	}
	assert.True(t, ta.Purchases.Equal(d("4000")))
}

func TestTradingAccountStockDefaultsToZero(t *testing.T) {
	ta := fixtureComposer(tradingEntries()).TradingAccount(ledger.Unbounded, StockFigures{})

	assert.True(t, ta.OpeningStock.IsZero())
	assert.True(t, ta.ClosingStock.IsZero())
	assert.True(t, ta.GrossProfit.Equal(d("4700")))
}

func TestTradingAccountWithoutRoleMappings(t *testing.T) {
	reg := ledger.NewRegistry([]ledger.Account{
		{ID: "acc-sales", Name: "Sales", Category: ledger.CategoryIncome},
	}, nil)
	store := ledger.NewStore([]ledger.JournalEntry{{
		ID:      "JE-1",
		Date:    day(1),
		Debits:  []ledger.Line{{AccountID: "acc-other", Amount: d("10")}},
		Credits: []ledger.Line{{AccountID: "acc-sales", Amount: d("10")}},
	}})
	ta := NewComposer(reg, store).TradingAccount(ledger.Unbounded, StockFigures{})

	// No roles mapped: sales and purchases stay zero rather than being
	// guessed from account names.
	assert.True(t, ta.Sales.IsZero())
	assert.True(t, ta.Purchases.IsZero())
	assert.Equal(t, []Row{}, ta.DirectExpenses)
	assert.True(t, decimal.Zero.Equal(ta.GrossProfit))
}
