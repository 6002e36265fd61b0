package bot

import (
	"context"
	"testing"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	calls int
}

func (h *recordingHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	h.calls++
}

func newTestDispatcher() (*Dispatcher, map[string]*recordingHandler) {
	handlers := map[string]*recordingHandler{
		"text":  {},
		"voice": {},
		"speak": {},
		"reset": {},
		"help":  {},
	}
	d := &Dispatcher{
		Text:  handlers["text"],
		Voice: handlers["voice"],
		Speak: handlers["speak"],
		Reset: handlers["reset"],
		Help:  handlers["help"],
	}
	return d, handlers
}

func textUpdate(text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			Text: text,
			Chat: models.Chat{ID: 1},
		},
	}
}

func TestDispatcherRoutesVoiceMessage(t *testing.T) {
	d, handlers := newTestDispatcher()

	d.Handle(context.Background(), nil, &models.Update{
		Message: &models.Message{
			Voice: &models.Voice{FileID: "file-1"},
			Chat:  models.Chat{ID: 1},
		},
	})

	assert.Equal(t, 1, handlers["voice"].calls)
	assert.Zero(t, handlers["text"].calls)
}

func TestDispatcherRoutesButtons(t *testing.T) {
	d, handlers := newTestDispatcher()
	ctx := context.Background()

	d.Handle(ctx, nil, textUpdate(btnNewSession))
	d.Handle(ctx, nil, textUpdate(btnSpeak))
	d.Handle(ctx, nil, textUpdate(btnHelp))
	d.Handle(ctx, nil, textUpdate(btnVoiceHint))

	assert.Equal(t, 1, handlers["reset"].calls)
	assert.Equal(t, 1, handlers["speak"].calls)
	assert.Equal(t, 2, handlers["help"].calls)
	assert.Zero(t, handlers["text"].calls)
}

func TestDispatcherRoutesPlainText(t *testing.T) {
	d, handlers := newTestDispatcher()

	d.Handle(context.Background(), nil, textUpdate("Привет!"))

	assert.Equal(t, 1, handlers["text"].calls)
}

func TestDispatcherIgnoresCommandsAndEmptyUpdates(t *testing.T) {
	d, handlers := newTestDispatcher()
	ctx := context.Background()

	d.Handle(ctx, nil, textUpdate("/unknown"))
	d.Handle(ctx, nil, &models.Update{})
	d.Handle(ctx, nil, nil)

	for name, h := range handlers {
		assert.Zero(t, h.calls, "handler %s must not be called", name)
	}
}
