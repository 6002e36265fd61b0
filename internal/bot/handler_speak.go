package bot

import (
	"bytes"
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/db/settings"
	"github.com/glebzinovew-create/telegram-gpt-bot/internal/speech"
)

const (
	noReplyToSpeak        = "Нет ответа для озвучки"
	synthesisFailureReply = "Не удалось озвучить ответ 😔"
)

// SpeakHandler voices the last stored assistant reply. It does not start a
// new model turn.
type SpeakHandler struct {
	Orchestrator Conversation
	Synthesizer  speech.Synthesizer
	Settings     settings.Repository
}

func NewSpeakHandler(o Conversation, s speech.Synthesizer, prefs settings.Repository) *SpeakHandler {
	return &SpeakHandler{Orchestrator: o, Synthesizer: s, Settings: prefs}
}

func (h *SpeakHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	uid := userID(update.Message)

	audio, notice := h.voiceReply(ctx, uid)
	if notice != "" {
		if err := sendWithMenu(ctx, b, chatID, notice); err != nil {
			log.Printf("[SpeakHandler.Handle] send error chatID=%d err=%v", chatID, err)
		}
		return
	}

	_, err := b.SendVoice(ctx, &bot.SendVoiceParams{
		ChatID: chatID,
		Voice: &models.InputFileUpload{
			Filename: "reply.mp3",
			Data:     bytes.NewReader(audio),
		},
	})
	if err != nil {
		log.Printf("[SpeakHandler.Handle] send voice error chatID=%d err=%v", chatID, err)
	}
}

// voiceReply synthesizes the last assistant reply. When no audio can be
// produced it returns the user-facing notice instead; the synthesis service
// is not called for an empty history.
func (h *SpeakHandler) voiceReply(ctx context.Context, uid string) ([]byte, string) {
	reply, found, err := h.Orchestrator.LastAssistantReply(ctx, uid)
	if err != nil {
		log.Printf("[SpeakHandler.voiceReply] history error userID=%s err=%v", uid, err)
		return nil, failureNotice
	}
	if !found {
		return nil, noReplyToSpeak
	}

	var voice string
	if h.Settings != nil {
		voice, _, err = h.Settings.GetById(ctx, uid)
		if err != nil {
			log.Printf("[SpeakHandler.voiceReply] settings error userID=%s err=%v", uid, err)
			voice = ""
		}
	}

	audio, err := h.Synthesizer.TextToSpeechVoice(ctx, reply, voice)
	if err != nil {
		log.Printf("[SpeakHandler.voiceReply] synthesis error userID=%s err=%v", uid, err)
		return nil, synthesisFailureReply
	}
	return audio, ""
}
