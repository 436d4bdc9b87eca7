// Package statements turns trial-balance aggregates into the shapes
// required by each financial statement: balance sheet sides, profit &
// loss sections, trading account sides, and cash flow activity buckets.
// All composers are pure functions of the snapshot; an empty trial
// balance yields a defined all-zero, balanced statement.
package statements

import (
	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

// Composer builds financial statements from one immutable snapshot.
type Composer struct {
	Registry *ledger.Registry
	Store    *ledger.Store
}

// NewComposer constructs a composer over the given snapshot.
func NewComposer(reg *ledger.Registry, store *ledger.Store) *Composer {
	return &Composer{Registry: reg, Store: store}
}

// Row is one account line inside a statement group.
type Row struct {
	AccountID string          `json:"accountId,omitempty"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// Group collects rows under one classification label with a subtotal.
type Group struct {
	Classification string          `json:"classification"`
	Rows           []Row           `json:"rows"`
	Total          decimal.Decimal `json:"total"`
}

// grouping accumulates rows per classification while preserving the
// order in which classifications first appear (registry order).
type grouping struct {
	groups []Group
	index  map[string]int
}

func newGrouping() *grouping {
	return &grouping{index: make(map[string]int)}
}

func (g *grouping) add(classification string, row Row) {
	idx, ok := g.index[classification]
	if !ok {
		idx = len(g.groups)
		g.index[classification] = idx
		g.groups = append(g.groups, Group{Classification: classification, Total: decimal.Zero})
	}
	g.groups[idx].Rows = append(g.groups[idx].Rows, row)
	g.groups[idx].Total = g.groups[idx].Total.Add(row.Amount)
}

func (g *grouping) result() ([]Group, decimal.Decimal) {
	total := decimal.Zero
	for _, grp := range g.groups {
		total = total.Add(grp.Total)
	}
	if g.groups == nil {
		return []Group{}, total
	}
	return g.groups, total
}

// classificationOf falls back to the category name when the account
// carries no display grouping label.
func classificationOf(acc ledger.Account) string {
	if acc.Classification != "" {
		return acc.Classification
	}
	return string(acc.Category)
}
