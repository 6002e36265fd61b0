package settings

import "context"

// Repository keeps per-user preferences, currently only the TTS voice.
type Repository interface {
	Init() error
	Upsert(ctx context.Context, userID string, voice string) error
	GetById(ctx context.Context, userID string) (voice string, found bool, err error)
	DeleteById(ctx context.Context, userID string) (bool, error)
}
