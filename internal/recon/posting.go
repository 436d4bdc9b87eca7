package recon

import (
	"errors"
	"fmt"

	"github.com/invoicepilot/ledgercore/internal/ledger"
)

var (
	// ErrUnknownDocType indicates a document type with no posting rule.
	ErrUnknownDocType = errors.New("recon: unknown source document type")
	// ErrRoleNotMapped indicates the chart of accounts lacks a role the
	// posting rule needs.
	ErrRoleNotMapped = errors.New("recon: account role not mapped")
)

// SynthesizeEntry builds the balanced cash-basis journal entry for a
// source document, using the registry's account-role mapping instead of
// name matching. The entry carries the derived ID, so appending it to a
// store that already holds the posting fails with ErrDuplicateEntry.
func SynthesizeEntry(reg *ledger.Registry, doc SourceDocument) (ledger.JournalEntry, error) {
	var debitRole, creditRole ledger.AccountRole
	var narration string
	switch doc.Type {
	case DocInvoice:
		debitRole, creditRole = ledger.RoleCashAndBank, ledger.RoleSales
		narration = fmt.Sprintf("Sales invoice %s", doc.ID)
	case DocPurchaseBill:
		debitRole, creditRole = ledger.RolePurchases, ledger.RoleCashAndBank
		narration = fmt.Sprintf("Purchase bill %s", doc.ID)
	case DocCreditNote:
		// Credit note reverses a sale.
		debitRole, creditRole = ledger.RoleSales, ledger.RoleCashAndBank
		narration = fmt.Sprintf("Credit note %s", doc.ID)
	case DocDebitNote:
		// Debit note reverses a purchase.
		debitRole, creditRole = ledger.RoleCashAndBank, ledger.RolePurchases
		narration = fmt.Sprintf("Debit note %s", doc.ID)
	default:
		return ledger.JournalEntry{}, ErrUnknownDocType
	}

	debitAcc, ok := reg.ByRole(debitRole)
	if !ok {
		return ledger.JournalEntry{}, fmt.Errorf("%w: %s", ErrRoleNotMapped, debitRole)
	}
	creditAcc, ok := reg.ByRole(creditRole)
	if !ok {
		return ledger.JournalEntry{}, fmt.Errorf("%w: %s", ErrRoleNotMapped, creditRole)
	}

	return ledger.JournalEntry{
		ID:        ExpectedJournalID(doc),
		Date:      doc.Date,
		Narration: narration,
		Debits:    []ledger.Line{{AccountID: debitAcc.ID, Amount: doc.Amount}},
		Credits:   []ledger.Line{{AccountID: creditAcc.ID, Amount: doc.Amount}},
	}, nil
}
