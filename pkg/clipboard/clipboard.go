// Package clipboard is the port for the host clipboard. Copy operations
// are best-effort: failures are logged, never surfaced to the caller.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/Harmitpatel428/Sales-Funnel/internal/domain/entity"
	"github.com/Harmitpatel428/Sales-Funnel/pkg/logger"
	"go.uber.org/zap"
)

// Writer copies text to the host clipboard
type Writer interface {
	Write(text string) error
}

// LogWriter is the fallback Writer for environments without a clipboard.
// It records the copy at debug level and drops the text.
type LogWriter struct{}

// NewLogWriter creates the fallback clipboard writer
func NewLogWriter() *LogWriter {
	return &LogWriter{}
}

func (w *LogWriter) Write(text string) error {
	logger.Log.Debug("clipboard unavailable, discarding text", zap.Int("length", len(text)))
	return nil
}

// Copy writes text through w, logging instead of returning any failure
func Copy(w Writer, text string) {
	if err := w.Write(text); err != nil {
		logger.Log.Warn("failed to copy to clipboard", zap.Error(err))
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// FormatLead renders a lead as the copy-all-fields text block
func FormatLead(lead *entity.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Client: %s\n", lead.ClientName)
	fmt.Fprintf(&b, "Company: %s\n", lead.Company)
	fmt.Fprintf(&b, "Consumer Number: %s\n", orNA(lead.ConsumerNumber))
	fmt.Fprintf(&b, "KVA: %s\n", lead.KVA)
	fmt.Fprintf(&b, "Phone: %s\n", orNA(lead.MainNumber().Number))
	fmt.Fprintf(&b, "Status: %s\n", lead.Status)
	fmt.Fprintf(&b, "Unit Type: %s\n", lead.UnitType)
	fmt.Fprintf(&b, "Connection Date: %s\n", lead.ConnectionDate)
	fmt.Fprintf(&b, "Follow-up Date: %s\n", orNA(lead.FollowUpDate))
	fmt.Fprintf(&b, "Last Activity: %s", lead.LastActivityDate.Format("02-01-2006"))
	if lead.CompanyLocation != "" {
		fmt.Fprintf(&b, "\nLocation: %s", lead.CompanyLocation)
	}
	if lead.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", lead.Notes)
	}
	if lead.FinalConclusion != "" {
		fmt.Fprintf(&b, "\nConclusion: %s", lead.FinalConclusion)
	}
	return b.String()
}
