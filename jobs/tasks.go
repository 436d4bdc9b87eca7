// Package jobs holds the background tasks: the scheduled
// reconciliation scan and the general ledger integrity check.
package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReconScan scans source documents for unposted transactions.
	TaskReconScan = "recon:scan"
	// TaskGLIntegrity recomputes the trial balance and verifies
	// debit/credit symmetry.
	TaskGLIntegrity = "gl:integrity"
)

// ReconScanPayload configures one reconciliation scan run.
type ReconScanPayload struct {
	// SummaryKey is the redis key the scan writes its result to.
	SummaryKey string `json:"summary_key"`
}

// NewReconScanTask constructs an Asynq task for the reconciliation scan.
func NewReconScanTask(payload ReconScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReconScan, data), nil
}

// NewGLIntegrityTask constructs an Asynq task for the integrity check.
func NewGLIntegrityTask() *asynq.Task {
	return asynq.NewTask(TaskGLIntegrity, nil)
}
