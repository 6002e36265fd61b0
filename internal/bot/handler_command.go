package bot

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type StartHandler struct{}

func NewStartHandler() *StartHandler {
	return &StartHandler{}
}

func (h *StartHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}

	if err := sendWithMenu(ctx, b, update.Message.Chat.ID, "GPT Pro Bot готов 🚀"); err != nil {
		log.Printf("[StartHandler.Handle] send error chatID=%d err=%v", update.Message.Chat.ID, err)
	}
}

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}

	text := "Просто напиши сообщение или отправь голосовое — я отвечу.\n\n" +
		btnNewSession + " — очистить память диалога\n" +
		btnSpeak + " — озвучить мой последний ответ\n" +
		"/voice <имя> — выбрать голос для озвучки"

	if err := sendWithMenu(ctx, b, update.Message.Chat.ID, text); err != nil {
		log.Printf("[HelpHandler.Handle] send error chatID=%d err=%v", update.Message.Chat.ID, err)
	}
}
