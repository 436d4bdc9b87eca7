// Package http wires the report, ledger, and reconciliation endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/invoicepilot/ledgercore/internal/ledger"
	"github.com/invoicepilot/ledgercore/internal/observability"
	"github.com/invoicepilot/ledgercore/internal/platform/cache"
	"github.com/invoicepilot/ledgercore/internal/platform/httpx"
	"github.com/invoicepilot/ledgercore/internal/recon"
	"github.com/invoicepilot/ledgercore/internal/snapshot"
	"github.com/invoicepilot/ledgercore/internal/statements"
)

// SnapshotLoader provides a consistent point-in-time snapshot per
// request. Every handler computes against one loaded snapshot and
// discards it.
type SnapshotLoader interface {
	Load(ctx context.Context) (*snapshot.Snapshot, error)
}

// Poster persists new journal entries.
type Poster interface {
	Post(ctx context.Context, entry ledger.JournalEntry) error
}

// Handler serves the statements, ledger, and reconciliation routes.
type Handler struct {
	logger    *slog.Logger
	snapshots SnapshotLoader
	poster    Poster
	cache     *cache.ReportCache
	metrics   *observability.Metrics
	validate  *validator.Validate
	rateLimit func(http.Handler) http.Handler
}

// NewHandler constructs the handler. cache, metrics, and poster may be
// nil; the corresponding features degrade quietly.
func NewHandler(logger *slog.Logger, snapshots SnapshotLoader, poster Poster, reportCache *cache.ReportCache, metrics *observability.Metrics) *Handler {
	limiter := httprate.Limit(30, time.Minute, httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return "ip:" + r.RemoteAddr, nil
		}
		return "ip:" + host, nil
	}))
	return &Handler{
		logger:    logger,
		snapshots: snapshots,
		poster:    poster,
		cache:     reportCache,
		metrics:   metrics,
		validate:  validator.New(),
		rateLimit: limiter,
	}
}

// MountRoutes attaches all routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/reports/trial-balance", h.trialBalance)
		r.Get("/reports/trial-balance.csv", h.trialBalanceCSV)
		r.Get("/reports/balance-sheet", h.balanceSheet)
		r.Get("/reports/profit-loss", h.profitAndLoss)
		r.Get("/reports/trading", h.trading)
		r.Get("/reports/cash-flow", h.cashFlow)
	})
	r.Get("/ledger/{accountID}", h.accountLedger)
	r.Get("/reconciliation/unposted", h.unposted)
	r.Post("/reconciliation/post", h.postUnposted)
	r.Post("/journal", h.postJournal)
}

// serveReport runs the cache-get / compute / cache-set cycle shared by
// every statement endpoint.
func (h *Handler) serveReport(w http.ResponseWriter, r *http.Request, name string, p ledger.Period, build func(*snapshot.Snapshot) any) {
	snap, err := h.snapshots.Load(r.Context())
	if err != nil {
		h.logger.Error("load snapshot", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	key := cache.Key(name, periodLabel(p), snap.Fingerprint)
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		h.metrics.ReportComputed(name, "hit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
		return
	}
	view := build(snap)
	payload, err := json.Marshal(view)
	if err != nil {
		h.logger.Error("marshal report", slog.String("statement", name), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.cache.Set(r.Context(), key, payload)
	h.metrics.ReportComputed(name, "miss")
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (h *Handler) trialBalance(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}
	h.serveReport(w, r, "trial-balance", p, func(snap *snapshot.Snapshot) any {
		return statements.NewComposer(snap.Registry, snap.Store).TrialBalance(p)
	})
}

func (h *Handler) balanceSheet(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}
	h.serveReport(w, r, "balance-sheet", p, func(snap *snapshot.Snapshot) any {
		return statements.NewComposer(snap.Registry, snap.Store).BalanceSheet(p)
	})
}

func (h *Handler) profitAndLoss(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}
	h.serveReport(w, r, "profit-loss", p, func(snap *snapshot.Snapshot) any {
		return statements.NewComposer(snap.Registry, snap.Store).ProfitAndLoss(p)
	})
}

func (h *Handler) trading(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}
	stock, err := parseStock(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Stock Figure", err.Error())
		return
	}
	// Stock figures participate in the cache key via the period label
	// suffix; they are external inputs, not snapshot data.
	name := "trading:" + stock.Opening.String() + ":" + stock.Closing.String()
	h.serveReport(w, r, name, p, func(snap *snapshot.Snapshot) any {
		return statements.NewComposer(snap.Registry, snap.Store).TradingAccount(p, stock)
	})
}

func (h *Handler) cashFlow(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}
	h.serveReport(w, r, "cash-flow", p, func(snap *snapshot.Snapshot) any {
		return statements.NewComposer(snap.Registry, snap.Store).CashFlow(p)
	})
}

func (h *Handler) accountLedger(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}
	accountID := chi.URLParam(r, "accountID")
	snap, err := h.snapshots.Load(r.Context())
	if err != nil {
		h.logger.Error("load snapshot", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	// Unknown accounts yield an empty ledger, not a 404: ledger views
	// degrade gracefully when accounts disappear from under references.
	rows := ledger.Project(snap.Registry, snap.Store, accountID, p)
	if rows == nil {
		rows = []ledger.LedgerRow{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"accountId": accountID,
		"rows":      rows,
	})
}

func (h *Handler) unposted(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshots.Load(r.Context())
	if err != nil {
		h.logger.Error("load snapshot", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	items := recon.FindUnposted(snap.Store, snap.Documents)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"count": len(items),
		"items": items,
	})
}
