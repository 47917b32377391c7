// filepath: internal/audit/stdout.go
package audit

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"reelhub/internal/logging"
)

// StdoutAuditor writes audit events to stdout through the shared
// structured logger. Each event carries a ULID so log lines can be
// referenced individually.
type StdoutAuditor struct {
	logger *logrus.Logger
}

// NewStdoutAuditor creates an auditor logging at the given level.
func NewStdoutAuditor(level string) *StdoutAuditor {
	return &StdoutAuditor{logger: logging.NewLogger(level)}
}

func (a *StdoutAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	fields := logrus.Fields{
		"audit_id":       ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}

	// Add details flattened into the fields
	for k, v := range details {
		fields["detail."+k] = v
	}

	// Log at INFO level with a fixed message to make it easy to grep
	a.logger.WithFields(fields).Info("AUDIT EVENT")
}
