package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/openai/openai-go"
)

var (
	// ErrTranscription marks a failed transcription call. An empty
	// transcription with a nil error is a valid result, not this failure.
	ErrTranscription = errors.New("speech: transcription failed")
	ErrSynthesis     = errors.New("speech: synthesis failed")
)

type Transcriber interface {
	SpeechToText(ctx context.Context, audio []byte) (string, error)
}

type Synthesizer interface {
	TextToSpeech(ctx context.Context, text string) ([]byte, error)
	TextToSpeechVoice(ctx context.Context, text string, voice string) ([]byte, error)
}

var (
	_ Transcriber = &Bridge{}
	_ Synthesizer = &Bridge{}
)

// Bridge converts between audio and text through the OpenAI audio endpoints.
// It is stateless and never touches the conversation store.
type Bridge struct {
	client          *openai.Client
	transcribeModel string
	speechModel     string
	voice           string
}

func NewBridge(client *openai.Client, transcribeModel string, speechModel string, voice string) *Bridge {
	return &Bridge{
		client:          client,
		transcribeModel: transcribeModel,
		speechModel:     speechModel,
		voice:           voice,
	}
}

func (b *Bridge) SpeechToText(ctx context.Context, audio []byte) (string, error) {
	transcript, err := b.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:  openai.FileParam(bytes.NewReader(audio), "voice.ogg", "audio/ogg"),
		Model: openai.F(openai.AudioModel(b.transcribeModel)),
	})
	if err != nil {
		log.Printf("[Bridge.SpeechToText] model=%s err=%v", b.transcribeModel, err)
		return "", fmt.Errorf("%w: %v", ErrTranscription, err)
	}
	return transcript.Text, nil
}

func (b *Bridge) TextToSpeech(ctx context.Context, text string) ([]byte, error) {
	return b.TextToSpeechVoice(ctx, text, b.voice)
}

func (b *Bridge) TextToSpeechVoice(ctx context.Context, text string, voice string) ([]byte, error) {
	if voice == "" {
		voice = b.voice
	}

	resp, err := b.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model: openai.F(openai.SpeechModel(b.speechModel)),
		Input: openai.F(text),
		Voice: openai.F(openai.AudioSpeechNewParamsVoice(voice)),
	})
	if err != nil {
		log.Printf("[Bridge.TextToSpeechVoice] model=%s voice=%s err=%v", b.speechModel, voice, err)
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			log.Println("[Bridge.TextToSpeechVoice] body close:", cerr)
		}
	}(resp.Body)

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[Bridge.TextToSpeechVoice] read body err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	return audio, nil
}
