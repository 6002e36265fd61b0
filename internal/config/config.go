package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken        string
	OpenAIKey       string
	DbPath          string
	ChatModel       string
	TranscribeModel string
	SpeechModel     string
	SpeechVoice     string
}

func Load() (c Config, err error) {
	// .env is optional, real env vars win either way
	_ = godotenv.Load()

	c = Config{
		BotToken:        os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		DbPath:          os.Getenv("DB_PATH"),
		ChatModel:       os.Getenv("OPENAI_MODEL"),
		TranscribeModel: os.Getenv("OPENAI_TRANSCRIBE_MODEL"),
		SpeechModel:     os.Getenv("OPENAI_TTS_MODEL"),
		SpeechVoice:     os.Getenv("OPENAI_TTS_VOICE"),
	}

	if c.BotToken == "" {
		return c, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if c.OpenAIKey == "" {
		return c, fmt.Errorf("OPENAI_API_KEY is required")
	}

	if c.DbPath == "" {
		c.DbPath = "memory.db"
	}
	if c.ChatModel == "" {
		c.ChatModel = "gpt-4o-mini"
	}
	if c.TranscribeModel == "" {
		c.TranscribeModel = "gpt-4o-mini-transcribe"
	}
	if c.SpeechModel == "" {
		c.SpeechModel = "gpt-4o-mini-tts"
	}
	if c.SpeechVoice == "" {
		c.SpeechVoice = "alloy"
	}

	return c, nil
}
