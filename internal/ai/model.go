package ai

import (
	"context"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/db/memory"
)

// Model is a chat completion backend. The history is the full context of the
// call, ordered oldest-first.
type Model interface {
	Complete(ctx context.Context, history []memory.Message) (reply string, err error)

	// CompleteStream delivers incremental text fragments through onDelta as
	// they arrive and returns the complete concatenated reply.
	CompleteStream(ctx context.Context, history []memory.Message, onDelta func(delta string)) (reply string, err error)
}
