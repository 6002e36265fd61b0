package memory

import "context"

// Repository is the per-user conversation log. Messages are append-only and
// ordered by insertion; there is no update path.
type Repository interface {
	Init() error
	Close() error

	// Append durably persists one message. Storage errors propagate.
	Append(ctx context.Context, userID string, role string, content string) error

	// Window returns at most limit most-recent messages for the user,
	// oldest-first. Empty slice when there is no history.
	Window(ctx context.Context, userID string, limit int) ([]Message, error)

	// Erase drops the whole history of one user. Erasing an unknown user
	// is a no-op.
	Erase(ctx context.Context, userID string) error
}
