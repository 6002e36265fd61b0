package bot

import (
	"context"
	"log"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/db/settings"
)

var knownVoices = []string{"alloy", "ash", "coral", "echo", "fable", "nova", "onyx", "sage", "shimmer"}

// VoiceSettingsHandler handles "/voice <имя>": stores the preferred voice
// used when the last reply is read aloud.
type VoiceSettingsHandler struct {
	Repository settings.Repository
	Default    string
}

func NewVoiceSettingsHandler(r settings.Repository, defaultVoice string) *VoiceSettingsHandler {
	return &VoiceSettingsHandler{Repository: r, Default: defaultVoice}
}

func (h *VoiceSettingsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	uid := userID(update.Message)

	arg := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/voice")))

	if arg == "" {
		current, found, err := h.Repository.GetById(ctx, uid)
		if err != nil {
			log.Printf("[VoiceSettingsHandler.Handle] settings error userID=%s err=%v", uid, err)
		}
		if !found || current == "" {
			current = h.Default
		}
		h.reply(ctx, b, chatID, "Текущий голос: "+current+"\nДоступные: "+strings.Join(knownVoices, ", "))
		return
	}

	if !isKnownVoice(arg) {
		h.reply(ctx, b, chatID, "Не знаю такой голос. Доступные: "+strings.Join(knownVoices, ", "))
		return
	}

	if err := h.Repository.Upsert(ctx, uid, arg); err != nil {
		log.Printf("[VoiceSettingsHandler.Handle] upsert error userID=%s voice=%s err=%v", uid, arg, err)
		h.reply(ctx, b, chatID, failureNotice)
		return
	}

	h.reply(ctx, b, chatID, "Готово! Теперь озвучиваю голосом "+arg)
}

func isKnownVoice(name string) bool {
	for _, v := range knownVoices {
		if v == name {
			return true
		}
	}
	return false
}

func (h *VoiceSettingsHandler) reply(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if err := sendWithMenu(ctx, b, chatID, text); err != nil {
		log.Printf("[VoiceSettingsHandler.Handle] send error chatID=%d err=%v", chatID, err)
	}
}
