package bot

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Dispatcher routes every update that is not a registered command: voice
// messages, keyboard buttons and plain text. Commands are left to the
// handlers registered in main.
type Dispatcher struct {
	Text  Handler
	Voice Handler
	Speak Handler
	Reset Handler
	Help  Handler
}

func (d *Dispatcher) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}

	if update.Message.Voice != nil {
		d.Voice.Handle(ctx, b, update)
		return
	}

	text := update.Message.Text
	switch {
	case text == "" || strings.HasPrefix(text, "/"):
		return
	case text == btnNewSession:
		d.Reset.Handle(ctx, b, update)
	case text == btnSpeak:
		d.Speak.Handle(ctx, b, update)
	case text == btnHelp || text == btnVoiceHint:
		d.Help.Handle(ctx, b, update)
	default:
		d.Text.Handle(ctx, b, update)
	}
}
