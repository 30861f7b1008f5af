package interfaces

import "context"

// Notifier delivers a message to a side channel. Delivery is best effort:
// implementations log failures and never propagate them.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}
