package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/invoicepilot/ledgercore/internal/ledger"
	"github.com/invoicepilot/ledgercore/internal/snapshot"
)

// GLIntegrityChecker recomputes the unbounded trial balance and logs
// whether total debits equal total credits. Imbalance is a data-quality
// signal, not a correction trigger.
type GLIntegrityChecker struct {
	snapshots *snapshot.Service
	logger    *slog.Logger
}

// NewGLIntegrityChecker constructs the checker.
func NewGLIntegrityChecker(snapshots *snapshot.Service, logger *slog.Logger) *GLIntegrityChecker {
	return &GLIntegrityChecker{snapshots: snapshots, logger: logger}
}

// HandleGLIntegrity processes TaskGLIntegrity tasks.
func (c *GLIntegrityChecker) HandleGLIntegrity(ctx context.Context, _ *asynq.Task) error {
	snap, err := c.snapshots.Load(ctx)
	if err != nil {
		return err
	}
	tb := ledger.Aggregate(snap.Registry, snap.Store, ledger.Unbounded)
	debit, credit := tb.Totals()
	if c.logger == nil {
		return nil
	}
	if tb.Balanced() && len(tb.UnbalancedEntries) == 0 && tb.UnresolvedRefs == 0 {
		c.logger.Info("gl integrity check passed",
			slog.String("total_debit", debit.String()),
			slog.String("total_credit", credit.String()))
		return nil
	}
	c.logger.Warn("gl integrity check found issues",
		slog.String("total_debit", debit.String()),
		slog.String("total_credit", credit.String()),
		slog.Int("unresolved_refs", tb.UnresolvedRefs),
		slog.Any("unbalanced_entries", tb.UnbalancedEntries))
	return nil
}
