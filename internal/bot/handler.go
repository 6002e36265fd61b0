package bot

import (
	"context"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/chat"
)

type Handler interface {
	Handle(ctx context.Context, b *bot.Bot, update *models.Update)
}

// Conversation is what handlers need from the turn orchestrator.
type Conversation interface {
	HandleTurn(ctx context.Context, userID string, input string) (string, error)
	HandleTurnStream(ctx context.Context, userID string, input string, render chat.RenderFunc) (string, error)
	LastAssistantReply(ctx context.Context, userID string) (reply string, found bool, err error)
}

func userID(msg *models.Message) string {
	if msg.From != nil {
		return strconv.FormatInt(msg.From.ID, 10)
	}
	return strconv.FormatInt(msg.Chat.ID, 10)
}
