package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shared fixtures for the ledger package tests.

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

func testAccounts() []Account {
	return []Account{
		{ID: "acc-cash", Name: "Cash", Category: CategoryAsset, Classification: "Current Assets"},
		{ID: "acc-sales", Name: "Sales", Category: CategoryIncome, Classification: "Direct Income"},
		{ID: "acc-purchases", Name: "Purchases", Category: CategoryExpense, Classification: "Direct Expenses"},
		{ID: "acc-rent", Name: "Rent Expense", Category: CategoryExpense, Classification: "Indirect Expenses"},
		{ID: "acc-capital", Name: "Capital", Category: CategoryEquity, Classification: "Capital"},
		{ID: "acc-loan", Name: "Bank Loan", Category: CategoryLiability, Classification: "Loans"},
	}
}

func testRoles() map[AccountRole]string {
	return map[AccountRole]string{
		RoleCashAndBank: "acc-cash",
		RoleSales:       "acc-sales",
		RolePurchases:   "acc-purchases",
	}
}

func testRegistry() *Registry {
	return NewRegistry(testAccounts(), testRoles())
}

// Two entries: day 1 cash sale of 1,000; day 5 rent of 200 paid in cash.
func scenarioEntries() []JournalEntry {
	return []JournalEntry{
		{
			ID:        "JE-INV-001",
			Date:      day(1),
			Narration: "Cash sale",
			Debits:    []Line{{AccountID: "acc-cash", Amount: d("1000")}},
			Credits:   []Line{{AccountID: "acc-sales", Amount: d("1000")}},
		},
		{
			ID:        "JE-EXP-001",
			Date:      day(5),
			Narration: "Office rent",
			Debits:    []Line{{AccountID: "acc-rent", Amount: d("200")}},
			Credits:   []Line{{AccountID: "acc-cash", Amount: d("200")}},
		},
	}
}
