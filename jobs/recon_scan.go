package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/invoicepilot/ledgercore/internal/recon"
	"github.com/invoicepilot/ledgercore/internal/snapshot"
)

// DefaultReconSummaryKey is where the nightly scan leaves its result.
const DefaultReconSummaryKey = "recon:unposted:summary"

// ReconScanSummary is the persisted result of one scan.
type ReconScanSummary struct {
	UnpostedCount int       `json:"unposted_count"`
	ScannedAt     time.Time `json:"scanned_at"`
}

// ReconScanner runs the unposted-transaction scan against a fresh
// snapshot and records the summary in redis for dashboards.
type ReconScanner struct {
	snapshots *snapshot.Service
	redis     *redis.Client
	logger    *slog.Logger
}

// NewReconScanner constructs the scanner.
func NewReconScanner(snapshots *snapshot.Service, redisClient *redis.Client, logger *slog.Logger) *ReconScanner {
	return &ReconScanner{snapshots: snapshots, redis: redisClient, logger: logger}
}

// HandleReconScan processes TaskReconScan tasks.
func (s *ReconScanner) HandleReconScan(ctx context.Context, t *asynq.Task) error {
	var payload ReconScanPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}
	if payload.SummaryKey == "" {
		payload.SummaryKey = DefaultReconSummaryKey
	}

	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return err
	}
	items := recon.FindUnposted(snap.Store, snap.Documents)
	summary := ReconScanSummary{UnpostedCount: len(items), ScannedAt: time.Now().UTC()}
	if s.logger != nil {
		s.logger.Info("reconciliation scan finished",
			slog.Int("unposted", summary.UnpostedCount),
			slog.Int("documents", len(snap.Documents)))
	}
	if s.redis != nil {
		data, err := json.Marshal(summary)
		if err != nil {
			return err
		}
		if err := s.redis.Set(ctx, payload.SummaryKey, data, 0).Err(); err != nil {
			return err
		}
	}
	return nil
}
