// filepath: internal/audit/audit.go
// Package audit records security-relevant catalog and account events.
package audit

import (
	"context"
)

// Auditor is the interface for recording audit events.
// ctx: context to trace request IDs (if available)
// action: what happened (e.g., "content.create", "user.login")
// actor: who did it (username)
// resource: what was affected (e.g., "Content:42")
// details: structured metadata about the event
type Auditor interface {
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// Nop is an Auditor that discards every event. Used when auditing is
// disabled in the config.
type Nop struct{}

func (Nop) Log(context.Context, string, string, string, map[string]interface{}) {}
