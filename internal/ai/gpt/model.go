package gpt

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/ai"
	"github.com/glebzinovew-create/telegram-gpt-bot/internal/db/memory"
)

const clientTimeout = 60 * time.Second
const modelTemperature = 0.7

var _ ai.Model = &ModelGPT{}

// NewClient builds the shared OpenAI client with the fixed request timeout.
// The same client serves completions and the speech bridge.
func NewClient(apiKey string) *openai.Client {
	return openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(clientTimeout),
	)
}

type ModelGPT struct {
	client *openai.Client
	model  string
}

func NewModelGPT(client *openai.Client, model string) *ModelGPT {
	return &ModelGPT{client: client, model: model}
}

func (m *ModelGPT) Complete(ctx context.Context, history []memory.Message) (string, error) {
	completion, err := m.client.Chat.Completions.New(ctx, m.params(history))
	if err != nil {
		log.Printf("[ModelGPT.Complete] request failed model=%s err=%v", m.model, err)
		return "", err
	}
	if len(completion.Choices) == 0 {
		log.Println("[ModelGPT.Complete] no choices in completion")
		return "", errors.New("no choices in completion")
	}
	return completion.Choices[0].Message.Content, nil
}

func (m *ModelGPT) CompleteStream(ctx context.Context, history []memory.Message, onDelta func(delta string)) (string, error) {
	stream := m.client.Chat.Completions.NewStreaming(ctx, m.params(history))
	defer stream.Close()

	acc := openai.ChatCompletionAccumulator{}
	for stream.Next() {
		chunk := stream.Current()
		acc.AddChunk(chunk)
		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			onDelta(chunk.Choices[0].Delta.Content)
		}
	}
	if err := stream.Err(); err != nil {
		log.Printf("[ModelGPT.CompleteStream] stream failed model=%s err=%v", m.model, err)
		return "", err
	}
	if len(acc.Choices) == 0 {
		log.Println("[ModelGPT.CompleteStream] no choices in completion")
		return "", errors.New("no choices in completion")
	}
	return acc.Choices[0].Message.Content, nil
}

func (m *ModelGPT) params(history []memory.Message) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case memory.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	return openai.ChatCompletionNewParams{
		Messages:    openai.F(messages),
		Model:       openai.F(m.model),
		Temperature: openai.F(modelTemperature),
	}
}
