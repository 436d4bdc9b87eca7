package statements

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(n int) time.Time {
	return time.Date(2024, time.April, n, 0, 0, 0, 0, time.UTC)
}

func dayPtr(n int) *time.Time {
	t := day(n)
	return &t
}

func fixtureRegistry() *ledger.Registry {
	accounts := []ledger.Account{
		{ID: "acc-cash", Name: "Cash", Category: ledger.CategoryAsset, Classification: "Current Assets"},
		{ID: "acc-machinery", Name: "Machinery", Category: ledger.CategoryAsset, Classification: "Fixed Assets"},
		{ID: "acc-sales", Name: "Sales", Category: ledger.CategoryIncome, Classification: "Direct Income"},
		{ID: "acc-purchases", Name: "Purchases", Category: ledger.CategoryExpense, Classification: "Direct Expenses"},
		{ID: "acc-freight", Name: "Freight Inward", Category: ledger.CategoryExpense, Classification: "Direct Expenses"},
		{ID: "acc-rent", Name: "Rent Expense", Category: ledger.CategoryExpense, Classification: "Indirect Expenses"},
		{ID: "acc-capital", Name: "Owner Capital", Category: ledger.CategoryEquity, Classification: "Capital"},
		{ID: "acc-loan", Name: "Bank Loan", Category: ledger.CategoryLiability, Classification: "Loans"},
	}
	roles := map[ledger.AccountRole]string{
		ledger.RoleCashAndBank: "acc-cash",
		ledger.RoleSales:       "acc-sales",
		ledger.RolePurchases:   "acc-purchases",
	}
	return ledger.NewRegistry(accounts, roles)
}

// simpleEntries: a 1,000 cash sale on day 1 and 200 rent paid on day 5.
func simpleEntries() []ledger.JournalEntry {
	return []ledger.JournalEntry{
		{
			ID:        "JE-INV-001",
			Date:      day(1),
			Narration: "Cash sale",
			Debits:    []ledger.Line{{AccountID: "acc-cash", Amount: d("1000")}},
			Credits:   []ledger.Line{{AccountID: "acc-sales", Amount: d("1000")}},
		},
		{
			ID:        "JE-EXP-001",
			Date:      day(5),
			Narration: "Office rent",
			Debits:    []ledger.Line{{AccountID: "acc-rent", Amount: d("200")}},
			Credits:   []ledger.Line{{AccountID: "acc-cash", Amount: d("200")}},
		},
	}
}

func fixtureComposer(entries []ledger.JournalEntry) *Composer {
	return NewComposer(fixtureRegistry(), ledger.NewStore(entries))
}
