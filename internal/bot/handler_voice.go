package bot

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/speech"
)

const (
	transcribeFailureReply = "Не удалось распознать голосовое сообщение 😔"
	emptyTranscriptReply   = "Не расслышал ни слова, попробуй ещё раз"
)

type VoiceHandler struct {
	Orchestrator Conversation
	Transcriber  speech.Transcriber
	Client       *http.Client
}

func NewVoiceHandler(o Conversation, t speech.Transcriber, client *http.Client) *VoiceHandler {
	return &VoiceHandler{Orchestrator: o, Transcriber: t, Client: client}
}

func (h *VoiceHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.Voice == nil {
		return
	}
	chatID := update.Message.Chat.ID
	uid := userID(update.Message)

	file, err := b.GetFile(ctx, &bot.GetFileParams{FileID: update.Message.Voice.FileID})
	if err != nil {
		log.Printf("[VoiceHandler.Handle] get file error userID=%s err=%v", uid, err)
		h.reply(ctx, b, chatID, transcribeFailureReply)
		return
	}

	audio, err := h.download(ctx, b.FileDownloadLink(file))
	if err != nil {
		log.Printf("[VoiceHandler.Handle] download error userID=%s err=%v", uid, err)
		h.reply(ctx, b, chatID, transcribeFailureReply)
		return
	}

	text, err := h.Transcriber.SpeechToText(ctx, audio)
	if err != nil {
		log.Printf("[VoiceHandler.Handle] transcription error userID=%s err=%v", uid, err)
		h.reply(ctx, b, chatID, transcribeFailureReply)
		return
	}
	if text == "" {
		h.reply(ctx, b, chatID, emptyTranscriptReply)
		return
	}

	reply, err := h.Orchestrator.HandleTurn(ctx, uid, text)
	if err != nil {
		log.Printf("[VoiceHandler.Handle] turn failed userID=%s err=%v", uid, err)
		h.reply(ctx, b, chatID, failureNotice)
		return
	}

	h.reply(ctx, b, chatID, reply)
}

func (h *VoiceHandler) download(ctx context.Context, link string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download voice file: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			log.Println("[VoiceHandler.download] body close:", cerr)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download voice file: status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (h *VoiceHandler) reply(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if err := sendWithMenu(ctx, b, chatID, text); err != nil {
		log.Printf("[VoiceHandler.Handle] send error chatID=%d err=%v", chatID, err)
	}
}
