package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/chat"
)

type fakeConversation struct {
	lastReply string
	found     bool
	err       error
}

func (c *fakeConversation) HandleTurn(ctx context.Context, userID, input string) (string, error) {
	return "", nil
}

func (c *fakeConversation) HandleTurnStream(ctx context.Context, userID, input string, render chat.RenderFunc) (string, error) {
	return "", nil
}

func (c *fakeConversation) LastAssistantReply(ctx context.Context, userID string) (string, bool, error) {
	return c.lastReply, c.found, c.err
}

type fakeSynthesizer struct {
	calls int
	voice string
	audio []byte
	err   error
}

func (s *fakeSynthesizer) TextToSpeech(ctx context.Context, text string) ([]byte, error) {
	return s.TextToSpeechVoice(ctx, text, "")
}

func (s *fakeSynthesizer) TextToSpeechVoice(ctx context.Context, text, voice string) ([]byte, error) {
	s.calls++
	s.voice = voice
	return s.audio, s.err
}

type fakeSettings struct {
	voice string
}

func (s *fakeSettings) Init() error { return nil }

func (s *fakeSettings) Upsert(ctx context.Context, userID, voice string) error {
	s.voice = voice
	return nil
}

func (s *fakeSettings) GetById(ctx context.Context, userID string) (string, bool, error) {
	return s.voice, s.voice != "", nil
}

func (s *fakeSettings) DeleteById(ctx context.Context, userID string) (bool, error) {
	had := s.voice != ""
	s.voice = ""
	return had, nil
}

func TestVoiceReplyEmptyHistorySkipsSynthesis(t *testing.T) {
	synth := &fakeSynthesizer{audio: []byte("mp3")}
	h := NewSpeakHandler(&fakeConversation{found: false}, synth, &fakeSettings{})

	audio, notice := h.voiceReply(context.Background(), "user-1")
	assert.Nil(t, audio)
	assert.Equal(t, noReplyToSpeak, notice)
	assert.Zero(t, synth.calls, "synthesis service must not be called for empty history")
}

func TestVoiceReplyUsesPreferredVoice(t *testing.T) {
	synth := &fakeSynthesizer{audio: []byte("mp3")}
	h := NewSpeakHandler(
		&fakeConversation{lastReply: "Hello!", found: true},
		synth,
		&fakeSettings{voice: "nova"},
	)

	audio, notice := h.voiceReply(context.Background(), "user-1")
	require.Empty(t, notice)
	assert.Equal(t, []byte("mp3"), audio)
	assert.Equal(t, 1, synth.calls)
	assert.Equal(t, "nova", synth.voice)
}

func TestVoiceReplySynthesisFailure(t *testing.T) {
	synth := &fakeSynthesizer{err: errors.New("synthesis failed")}
	h := NewSpeakHandler(&fakeConversation{lastReply: "Hello!", found: true}, synth, &fakeSettings{})

	audio, notice := h.voiceReply(context.Background(), "user-1")
	assert.Nil(t, audio)
	assert.Equal(t, synthesisFailureReply, notice)
}

func TestVoiceReplyHistoryFailure(t *testing.T) {
	synth := &fakeSynthesizer{}
	h := NewSpeakHandler(&fakeConversation{err: errors.New("disk I/O error")}, synth, &fakeSettings{})

	audio, notice := h.voiceReply(context.Background(), "user-1")
	assert.Nil(t, audio)
	assert.Equal(t, failureNotice, notice)
	assert.Zero(t, synth.calls)
}
