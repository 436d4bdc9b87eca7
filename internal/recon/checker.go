// Package recon cross-references source documents (invoices, bills,
// notes) against the journal store to find transactions that were
// never posted, the most common explanation for a balance sheet
// mismatch.
package recon

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

// DocType enumerates the source document types the checker understands.
type DocType string

const (
	DocInvoice      DocType = "INVOICE"
	DocPurchaseBill DocType = "PURCHASE_BILL"
	DocCreditNote   DocType = "CREDIT_NOTE"
	DocDebitNote    DocType = "DEBIT_NOTE"
)

func (t DocType) known() bool {
	switch t {
	case DocInvoice, DocPurchaseBill, DocCreditNote, DocDebitNote:
		return true
	}
	return false
}

// SourceDocument is the collaborator-supplied record of a business
// document that should have produced a journal entry.
type SourceDocument struct {
	Type   DocType
	ID     string
	Amount decimal.Decimal
	Date   time.Time
}

// Unposted reports one source document with no corresponding journal
// entry.
type Unposted struct {
	Type   DocType         `json:"type"`
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// journalIDPrefix is the fixed naming convention binding a source
// document to its journal entry: invoice INV-004 is posted as journal
// entry JE-INV-004. The convention is what makes posting idempotent:
// a second posting attempt collides on the derived ID and is rejected
// by the journal store.
const journalIDPrefix = "JE-"

// ExpectedJournalID derives the journal entry ID a document must have
// been posted under.
func ExpectedJournalID(doc SourceDocument) string {
	return journalIDPrefix + doc.ID
}

// FindUnposted returns every source document whose derived journal
// entry ID is absent from the store, one row per document, in input
// order. Documents of an unrecognized type are treated as posted
// rather than failing the scan.
func FindUnposted(store *ledger.Store, docs []SourceDocument) []Unposted {
	out := make([]Unposted, 0)
	for _, doc := range docs {
		if !doc.Type.known() || doc.ID == "" {
			continue
		}
		if store.Contains(ExpectedJournalID(doc)) {
			continue
		}
		out = append(out, Unposted{
			Type:   doc.Type,
			ID:     doc.ID,
			Amount: doc.Amount,
			Date:   doc.Date,
		})
	}
	return out
}
