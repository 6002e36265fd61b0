package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_BOT_TOKEN",
		"OPENAI_API_KEY",
		"DB_PATH",
		"OPENAI_MODEL",
		"OPENAI_TRANSCRIBE_MODEL",
		"OPENAI_TTS_MODEL",
		"OPENAI_TTS_VOICE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingBotToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
}

func TestLoadMissingOpenAIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory.db", cfg.DbPath)
	assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	assert.Equal(t, "gpt-4o-mini-transcribe", cfg.TranscribeModel)
	assert.Equal(t, "gpt-4o-mini-tts", cfg.SpeechModel)
	assert.Equal(t, "alloy", cfg.SpeechVoice)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("OPENAI_TTS_VOICE", "nova")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.DbPath)
	assert.Equal(t, "nova", cfg.SpeechVoice)
}
