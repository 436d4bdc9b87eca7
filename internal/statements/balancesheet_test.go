package statements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

func TestBalanceSheetConcreteScenario(t *testing.T) {
	bs := fixtureComposer(simpleEntries()).BalanceSheet(ledger.Unbounded)

	// Assets: Cash 800 only.
	require.Len(t, bs.Assets.Groups, 1)
	assert.Equal(t, "Current Assets", bs.Assets.Groups[0].Classification)
	require.Len(t, bs.Assets.Groups[0].Rows, 1)
	assert.Equal(t, "Cash", bs.Assets.Groups[0].Rows[0].Name)
	assert.True(t, bs.Assets.Groups[0].Rows[0].Amount.Equal(d("800")))
	assert.True(t, bs.Assets.Total.Equal(d("800")))

	// Liabilities: only the folded-in net profit under Capital.
	require.Len(t, bs.Liabilities.Groups, 1)
	assert.Equal(t, "Capital", bs.Liabilities.Groups[0].Classification)
	require.Len(t, bs.Liabilities.Groups[0].Rows, 1)
	assert.Equal(t, "Net Profit", bs.Liabilities.Groups[0].Rows[0].Name)
	assert.True(t, bs.Liabilities.Groups[0].Rows[0].Amount.Equal(d("800")))
	assert.True(t, bs.Liabilities.Total.Equal(d("800")))

	assert.True(t, bs.Difference.IsZero())
	assert.True(t, bs.Balanced)
}

func TestBalanceSheetNetLossGoesToAssetsSide(t *testing.T) {
	entries := []ledger.JournalEntry{
		{
			ID:      "JE-CAP-001",
			Date:    day(1),
			Debits:  []ledger.Line{{AccountID: "acc-cash", Amount: d("500")}},
			Credits: []ledger.Line{{AccountID: "acc-capital", Amount: d("500")}},
		},
		{
			ID:      "JE-EXP-002",
			Date:    day(3),
			Debits:  []ledger.Line{{AccountID: "acc-rent", Amount: d("120")}},
			Credits: []ledger.Line{{AccountID: "acc-cash", Amount: d("120")}},
		},
	}
	bs := fixtureComposer(entries).BalanceSheet(ledger.Unbounded)

	var lossRow *Row
	for _, grp := range bs.Assets.Groups {
		if grp.Classification == "Miscellaneous Expenditure" {
			require.Len(t, grp.Rows, 1)
			lossRow = &grp.Rows[0]
		}
	}
	require.NotNil(t, lossRow, "net loss row missing from assets side")
	assert.Equal(t, "Net Loss", lossRow.Name)
	assert.True(t, lossRow.Amount.Equal(d("120")))

	assert.True(t, bs.Assets.Total.Equal(d("500")))
	assert.True(t, bs.Liabilities.Total.Equal(d("500")))
	assert.True(t, bs.Balanced)
}

func TestBalanceSheetOmitsZeroValueAccounts(t *testing.T) {
	entries := append(simpleEntries(), ledger.JournalEntry{
		// Loan taken and repaid in full: net zero.
		ID:      "JE-LOAN-1",
		Date:    day(2),
		Debits:  []ledger.Line{{AccountID: "acc-cash", Amount: d("100")}},
		Credits: []ledger.Line{{AccountID: "acc-loan", Amount: d("100")}},
	}, ledger.JournalEntry{
		ID:      "JE-LOAN-2",
		Date:    day(3),
		Debits:  []ledger.Line{{AccountID: "acc-loan", Amount: d("100")}},
		Credits: []ledger.Line{{AccountID: "acc-cash", Amount: d("100")}},
	})
	bs := fixtureComposer(entries).BalanceSheet(ledger.Unbounded)

	for _, grp := range bs.Liabilities.Groups {
		assert.NotEqual(t, "Loans", grp.Classification)
	}
	assert.True(t, bs.Balanced)
}

func TestBalanceSheetEmptyTrialBalanceIsBalanced(t *testing.T) {
	bs := fixtureComposer(nil).BalanceSheet(ledger.Unbounded)

	assert.Empty(t, bs.Assets.Groups)
	assert.Empty(t, bs.Liabilities.Groups)
	assert.True(t, bs.Assets.Total.IsZero())
	assert.True(t, bs.Liabilities.Total.IsZero())
	assert.True(t, bs.Balanced)
}

func TestBalanceSheetTalliesWithMixedActivity(t *testing.T) {
	entries := []ledger.JournalEntry{
		{
			ID:      "JE-CAP-010",
			Date:    day(1),
			Debits:  []ledger.Line{{AccountID: "acc-cash", Amount: d("10000")}},
			Credits: []ledger.Line{{AccountID: "acc-capital", Amount: d("10000")}},
		},
		{
			ID:      "JE-ASSET-1",
			Date:    day(2),
			Debits:  []ledger.Line{{AccountID: "acc-machinery", Amount: d("4000")}},
			Credits: []ledger.Line{{AccountID: "acc-cash", Amount: d("4000")}},
		},
		{
			ID:      "JE-INV-777",
			Date:    day(3),
			Debits:  []ledger.Line{{AccountID: "acc-cash", Amount: d("2500")}},
			Credits: []ledger.Line{{AccountID: "acc-sales", Amount: d("2500")}},
		},
		{
			ID:      "JE-BILL-42",
			Date:    day(4),
			Debits:  []ledger.Line{{AccountID: "acc-purchases", Amount: d("1300")}},
			Credits: []ledger.Line{{AccountID: "acc-cash", Amount: d("1300")}},
		},
	}
	bs := fixtureComposer(entries).BalanceSheet(ledger.Unbounded)

	assert.True(t, bs.Assets.Total.Equal(d("11200")), "assets total %s", bs.Assets.Total)
	assert.True(t, bs.Liabilities.Total.Equal(d("11200")), "liabilities total %s", bs.Liabilities.Total)
	assert.True(t, bs.Balanced)
}

func TestBalanceSheetSurfacesUnresolvedRefs(t *testing.T) {
	entries := append(simpleEntries(), ledger.JournalEntry{
		ID:      "JE-ORPHAN",
		Date:    day(6),
		Debits:  []ledger.Line{{AccountID: "acc-deleted", Amount: d("10")}},
		Credits: []ledger.Line{{AccountID: "acc-cash", Amount: d("10")}},
	})
	bs := fixtureComposer(entries).BalanceSheet(ledger.Unbounded)

	assert.Equal(t, 1, bs.UnresolvedRefs)
}
