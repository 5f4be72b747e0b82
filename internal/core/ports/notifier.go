package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Notifier delivers best-effort notifications to representatives and admins.
//
// Delivery is fire-and-forget from the core's perspective: implementations
// log and swallow failures, and callers invoke the notifier only after their
// transaction committed, so a delivery failure can never roll back a
// committed transition.
type Notifier interface {
	// NotifyRep notifies a single representative.
	NotifyRep(ctx context.Context, repID kernel.UUID, message string)

	// NotifyAdmins notifies the admin role.
	NotifyAdmins(ctx context.Context, message string)
}
