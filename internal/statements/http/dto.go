package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
	"github.com/invoicepilot/ledgercore/internal/statements"
)

const dateLayout = "2006-01-02"

// parsePeriod reads the optional from/to query parameters. Absent
// bounds leave the period open on that side.
func parsePeriod(r *http.Request) (ledger.Period, error) {
	var p ledger.Period
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return ledger.Period{}, fmt.Errorf("from: expected YYYY-MM-DD, got %q", raw)
		}
		p.From = &t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return ledger.Period{}, fmt.Errorf("to: expected YYYY-MM-DD, got %q", raw)
		}
		p.To = &t
	}
	if p.From != nil && p.To != nil && p.To.Before(*p.From) {
		return ledger.Period{}, errors.New("period: to precedes from")
	}
	return p, nil
}

// parseStock reads the externally supplied opening/closing stock
// figures for the trading account. Absent figures stay zero; the
// engine never derives stock valuation.
func parseStock(r *http.Request) (statements.StockFigures, error) {
	var stock statements.StockFigures
	if raw := r.URL.Query().Get("opening_stock"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return statements.StockFigures{}, fmt.Errorf("opening_stock: %q is not a number", raw)
		}
		stock.Opening = v
	}
	if raw := r.URL.Query().Get("closing_stock"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return statements.StockFigures{}, fmt.Errorf("closing_stock: %q is not a number", raw)
		}
		stock.Closing = v
	}
	return stock, nil
}

func periodLabel(p ledger.Period) string {
	from, to := "", ""
	if p.From != nil {
		from = p.From.Format(dateLayout)
	}
	if p.To != nil {
		to = p.To.Format(dateLayout)
	}
	return from + ".." + to
}

// PostUnpostedRequest asks to post one unposted source document.
type PostUnpostedRequest struct {
	Type   string `json:"type" validate:"required"`
	ID     string `json:"id" validate:"required"`
	Amount string `json:"amount" validate:"required"`
	Date   string `json:"date" validate:"required"`
}

// JournalLineRequest is one leg of a manual journal posting.
type JournalLineRequest struct {
	AccountID string `json:"accountId" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
}

// PostJournalRequest is a manual journal posting.
type PostJournalRequest struct {
	Date      string               `json:"date" validate:"required"`
	Narration string               `json:"narration"`
	Debits    []JournalLineRequest `json:"debits" validate:"required,min=1,dive"`
	Credits   []JournalLineRequest `json:"credits" validate:"required,min=1,dive"`
}
