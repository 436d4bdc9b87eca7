package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	reg := testRegistry()

	acc, ok := reg.Lookup("acc-cash")
	require.True(t, ok)
	assert.Equal(t, "Cash", acc.Name)
	assert.Equal(t, CategoryAsset, acc.Category)

	_, ok = reg.Lookup("acc-ghost")
	assert.False(t, ok)
}

func TestRegistryCategoryOfUnknownIsSentinel(t *testing.T) {
	reg := testRegistry()

	assert.Equal(t, CategoryNone, reg.CategoryOf("acc-ghost"))
	assert.Equal(t, 0, reg.CategoryOf("acc-ghost").DebitSign())
}

func TestRegistryNameOfFallsBackToID(t *testing.T) {
	reg := testRegistry()

	assert.Equal(t, "Cash", reg.NameOf("acc-cash"))
	assert.Equal(t, "acc-ghost", reg.NameOf("acc-ghost"))
}

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	reg := testRegistry()

	ids := make([]string, 0)
	for _, acc := range reg.Accounts() {
		ids = append(ids, acc.ID)
	}
	assert.Equal(t, []string{"acc-cash", "acc-sales", "acc-purchases", "acc-rent", "acc-capital", "acc-loan"}, ids)
}

func TestRegistryIgnoresDuplicateIDs(t *testing.T) {
	accounts := append(testAccounts(), Account{ID: "acc-cash", Name: "Shadow Cash", Category: CategoryExpense})
	reg := NewRegistry(accounts, nil)

	acc, ok := reg.Lookup("acc-cash")
	require.True(t, ok)
	assert.Equal(t, "Cash", acc.Name)
	assert.Len(t, reg.Accounts(), len(testAccounts()))
}

func TestRegistryRoles(t *testing.T) {
	reg := testRegistry()

	acc, ok := reg.ByRole(RoleSales)
	require.True(t, ok)
	assert.Equal(t, "acc-sales", acc.ID)

	_, ok = reg.ByRole(RoleClosingStock)
	assert.False(t, ok)

	assert.True(t, reg.HasRole("acc-cash", RoleCashAndBank))
	assert.False(t, reg.HasRole("acc-sales", RoleCashAndBank))
}

func TestRegistryDropsRolesForUnknownAccounts(t *testing.T) {
	reg := NewRegistry(testAccounts(), map[AccountRole]string{RoleSales: "acc-ghost"})

	_, ok := reg.ByRole(RoleSales)
	assert.False(t, ok)
}

func TestCategoryDebitSign(t *testing.T) {
	cases := []struct {
		category Category
		sign     int
	}{
		{CategoryAsset, 1},
		{CategoryExpense, 1},
		{CategoryLiability, -1},
		{CategoryEquity, -1},
		{CategoryIncome, -1},
		{CategoryNone, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.sign, tc.category.DebitSign(), "category %q", tc.category)
	}
}
