// Package notify provides a logging implementation of the Notifier port.
//
// Messages are written to the structured log instead of an external channel.
// A real deployment would swap this adapter for one backed by SMS, email or a
// chat integration without touching the core.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
)

// LogNotifier logs notifications instead of delivering them externally.
// It satisfies the fire-and-forget contract of the Notifier port: nothing
// it does can fail a caller.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that writes to the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyRep logs a notification addressed to a single representative.
func (n *LogNotifier) NotifyRep(ctx context.Context, repID kernel.UUID, message string) {
	n.logger.InfoContext(ctx, "rep notification",
		"rep_id", repID.String(),
		"message", message,
	)
}

// NotifyAdmins logs a notification addressed to the admin role.
func (n *LogNotifier) NotifyAdmins(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, "admin notification",
		"message", message,
	)
}
