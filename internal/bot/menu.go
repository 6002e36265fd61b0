package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	btnNewSession = "🧠 Новая сессия"
	btnVoiceHint  = "🎤 Голос"
	btnSpeak      = "🔊 Озвучить"
	btnHelp       = "⚙️ Помощь"
)

const failureNotice = "Произошла ошибка 😔 Попробуй ещё раз позже"

func sendWithMenu(ctx context.Context, b *bot.Bot, chatID int64, text string) error {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: mainKeyboard(),
	})
	return err
}

func mainKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: btnNewSession}},
			{{Text: btnVoiceHint}, {Text: btnSpeak}},
			{{Text: btnHelp}},
		},
		ResizeKeyboard: true,
	}
}
