package bot

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/db/memory"
)

type ResetHandler struct {
	Repository memory.Repository
}

func NewResetHandler(r memory.Repository) *ResetHandler {
	return &ResetHandler{Repository: r}
}

func (h *ResetHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	uid := userID(update.Message)

	if err := h.Repository.Erase(ctx, uid); err != nil {
		log.Printf("[ResetHandler.Handle] erase error userID=%s err=%v", uid, err)
		if serr := sendWithMenu(ctx, b, chatID, failureNotice); serr != nil {
			log.Printf("[ResetHandler.Handle] send error chatID=%d err=%v", chatID, serr)
		}
		return
	}

	if err := sendWithMenu(ctx, b, chatID, "Память очищена"); err != nil {
		log.Printf("[ResetHandler.Handle] send error chatID=%d err=%v", chatID, err)
	}
}
