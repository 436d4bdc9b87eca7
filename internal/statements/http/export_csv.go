package http

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/invoicepilot/ledgercore/internal/platform/httpx"
	"github.com/invoicepilot/ledgercore/internal/statements"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

// amountPrinter formats CSV amounts with digit grouping. Display
// rounding happens only here, at the edge, never inside aggregation.
var amountPrinter = message.NewPrinter(language.English)

func formatAmount(v decimal.Decimal) string {
	return amountPrinter.Sprintf("%.2f", v.InexactFloat64())
}

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeComment(line string) error {
	if s == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if !strings.HasSuffix(line, "\r\n") {
		line = strings.TrimSuffix(line, "\n")
		line += "\r\n"
	}
	_, err := s.buf.WriteString(line)
	return err
}

func (s *csvStreamer) writeRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

func (s *csvStreamer) Flush() error {
	if s == nil || s.csv == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

// trialBalanceCSV streams the trial balance as CSV.
func (h *Handler) trialBalanceCSV(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Period", err.Error())
		return
	}
	snap, err := h.snapshots.Load(r.Context())
	if err != nil {
		h.logger.Error("load snapshot", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	view := statements.NewComposer(snap.Registry, snap.Store).TrialBalance(p)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trial-balance.csv"`)

	streamer := newCSVStreamer(w)
	_ = streamer.writeComment("# Trial Balance " + periodLabel(p))
	if err := streamer.writeRow([]string{"Account ID", "Account", "Category", "Net Debit", "Net Credit"}); err != nil {
		h.logger.Error("write csv header", slog.Any("error", err))
		return
	}
	for _, line := range view.Lines {
		row := []string{
			line.AccountID,
			line.Name,
			string(line.Category),
			formatAmount(line.NetDebit),
			formatAmount(line.NetCredit),
		}
		if err := streamer.writeRow(row); err != nil {
			h.logger.Error("write csv row", slog.Any("error", err))
			return
		}
	}
	_ = streamer.writeRow([]string{"", "Total", "", formatAmount(view.TotalDebit), formatAmount(view.TotalCredit)})
	if err := streamer.Flush(); err != nil {
		h.logger.Error("flush csv", slog.Any("error", err))
	}
}
