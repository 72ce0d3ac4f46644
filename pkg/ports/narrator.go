package ports

import "context"

// Narrator speaks short status messages.
// Say must not block the caller; a newer message supersedes a pending one.
type Narrator interface {
	Say(ctx context.Context, text string)
	Stop()
}
