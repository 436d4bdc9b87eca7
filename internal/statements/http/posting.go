package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicepilot/ledgercore/internal/ledger"
	"github.com/invoicepilot/ledgercore/internal/platform/httpx"
	"github.com/invoicepilot/ledgercore/internal/recon"
)

// postUnposted posts the journal entry for one reported unposted
// document. The entry ID is derived from the document ID, so posting
// the same document twice collides and returns 409 instead of creating
// a second entry.
func (h *Handler) postUnposted(w http.ResponseWriter, r *http.Request) {
	var req PostUnpostedRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "amount must be a positive number")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date: expected YYYY-MM-DD")
		return
	}
	doc := recon.SourceDocument{
		Type:   recon.DocType(req.Type),
		ID:     req.ID,
		Amount: amount,
		Date:   date,
	}

	snap, err := h.snapshots.Load(r.Context())
	if err != nil {
		h.logger.Error("load snapshot", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	entry, err := recon.SynthesizeEntry(snap.Registry, doc)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Cannot Post", err.Error())
		return
	}
	if err := snap.Store.Append(entry); err != nil {
		h.respondPostError(w, err)
		return
	}
	if err := h.poster.Post(r.Context(), entry); err != nil {
		h.respondPostError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"entryId": entry.ID})
}

// postJournal accepts a manual journal posting. This boundary is the
// posting process itself, so unbalanced submissions are rejected here
// before they ever reach the journal.
func (h *Handler) postJournal(w http.ResponseWriter, r *http.Request) {
	var req PostJournalRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date: expected YYYY-MM-DD")
		return
	}
	entry := ledger.JournalEntry{
		ID:        "JE-MAN-" + uuid.NewString(),
		Date:      date,
		Narration: req.Narration,
	}
	entry.Debits, err = toLines(req.Debits)
	if err == nil {
		entry.Credits, err = toLines(req.Credits)
	}
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if !entry.Balanced() {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "debit and credit totals must match")
		return
	}
	if err := h.poster.Post(r.Context(), entry); err != nil {
		h.respondPostError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"entryId": entry.ID})
}

func toLines(reqs []JournalLineRequest) ([]ledger.Line, error) {
	lines := make([]ledger.Line, 0, len(reqs))
	for i, lr := range reqs {
		amount, err := decimal.NewFromString(lr.Amount)
		if err != nil || !amount.IsPositive() {
			return nil, fmt.Errorf("line %d: amount must be a positive number", i)
		}
		lines = append(lines, ledger.Line{AccountID: lr.AccountID, Amount: amount})
	}
	return lines, nil
}

func (h *Handler) respondPostError(w http.ResponseWriter, err error) {
	if errors.Is(err, ledger.ErrDuplicateEntry) {
		httpx.Problem(w, http.StatusConflict, "Duplicate", "journal entry already posted")
		return
	}
	h.logger.Error("post journal", slog.Any("error", err))
	httpx.RespondError(w, err)
}
