package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodContainsIgnoresTimeOfDay(t *testing.T) {
	p := Period{From: dayPtr(1), To: dayPtr(5)}

	late := time.Date(2024, time.April, 5, 23, 59, 59, 0, time.UTC)
	assert.True(t, p.Contains(late))

	early := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)
	assert.False(t, p.Contains(early))
}

func TestPeriodContainsOpenBounds(t *testing.T) {
	assert.True(t, Unbounded.Contains(day(15)))
	assert.True(t, Period{From: dayPtr(10)}.Contains(day(20)))
	assert.False(t, Period{From: dayPtr(10)}.Contains(day(9)))
	assert.True(t, Period{To: dayPtr(10)}.Contains(day(1)))
	assert.False(t, Period{To: dayPtr(10)}.Contains(day(11)))
}

func TestPeriodBefore(t *testing.T) {
	before, ok := Period{From: dayPtr(10), To: dayPtr(20)}.Before()
	require.True(t, ok)
	assert.Nil(t, before.From)
	assert.Equal(t, day(9), *before.To)

	_, ok = Unbounded.Before()
	assert.False(t, ok)
}

func TestJournalEntryBalanced(t *testing.T) {
	e := JournalEntry{
		Debits: []Line{
			{AccountID: "acc-rent", Amount: d("60")},
			{AccountID: "acc-purchases", Amount: d("40")},
		},
		Credits: []Line{{AccountID: "acc-cash", Amount: d("100")}},
	}
	assert.True(t, e.DebitTotal().Equal(d("100")))
	assert.True(t, e.CreditTotal().Equal(d("100")))
	assert.True(t, e.Balanced())

	e.Credits[0].Amount = d("100.01")
	assert.False(t, e.Balanced())
}
