package bot

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type TextHandler struct {
	Orchestrator Conversation
}

func NewTextHandler(o Conversation) *TextHandler {
	return &TextHandler{Orchestrator: o}
}

func (h *TextHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID
	uid := userID(update.Message)

	// placeholder message, edited in place as the reply streams in
	sent, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Думаю...",
	})
	if err != nil {
		log.Printf("[TextHandler.Handle] send placeholder error chatID=%d err=%v", chatID, err)
		return
	}

	render := func(text string) error {
		_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: sent.ID,
			Text:      text,
		})
		return err
	}

	if _, err := h.Orchestrator.HandleTurnStream(ctx, uid, update.Message.Text, render); err != nil {
		// storage failure: full detail stays in the logs, the user gets a
		// generic notice
		log.Printf("[TextHandler.Handle] turn failed userID=%s err=%v", uid, err)
		if _, eerr := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: sent.ID,
			Text:      failureNotice,
		}); eerr != nil {
			log.Printf("[TextHandler.Handle] edit error chatID=%d err=%v", chatID, eerr)
		}
	}
}
