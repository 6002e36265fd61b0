package chat

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/ai"
	"github.com/glebzinovew-create/telegram-gpt-bot/internal/db/memory"
)

// FailureReply is what the user sees when the completion backend fails or
// times out. It is not persisted as an assistant turn, so the next window
// replays as if the failed turn never produced a reply.
const FailureReply = "Не удалось выполнить запрос. Повторите позже"

const renderInterval = 500 * time.Millisecond

// RenderFunc receives the concatenated partial reply for display. Errors are
// treated as transient and never abort the turn.
type RenderFunc func(text string) error

// Orchestrator runs one turn: persist the user message, replay the trailing
// window into the model, persist and return the reply.
type Orchestrator struct {
	model    ai.Model
	repo     memory.Repository
	interval time.Duration
}

func NewOrchestrator(model ai.Model, repo memory.Repository) *Orchestrator {
	return &Orchestrator{
		model:    model,
		repo:     repo,
		interval: renderInterval,
	}
}

func (o *Orchestrator) HandleTurn(ctx context.Context, userID string, input string) (string, error) {
	history, err := o.appendAndWindow(ctx, userID, input)
	if err != nil {
		return "", err
	}

	reply, err := o.model.Complete(ctx, history)
	if err != nil {
		log.Printf("[Orchestrator.HandleTurn] completion failed userID=%s err=%v", userID, err)
		return FailureReply, nil
	}

	if err := o.repo.Append(ctx, userID, memory.RoleAssistant, reply); err != nil {
		return "", err
	}
	return reply, nil
}

// HandleTurnStream is HandleTurn with incremental output: the growing reply
// is pushed through render at most once per tick while deltas arrive, plus
// one final flush with the complete text. Render failures are logged and
// retried on the next tick; they never stop stream consumption.
func (o *Orchestrator) HandleTurnStream(ctx context.Context, userID string, input string, render RenderFunc) (string, error) {
	history, err := o.appendAndWindow(ctx, userID, input)
	if err != nil {
		return "", err
	}

	var mu sync.Mutex
	var partial strings.Builder

	done := make(chan struct{})
	var reply string
	var modelErr error

	go func() {
		defer close(done)
		reply, modelErr = o.model.CompleteStream(ctx, history, func(delta string) {
			mu.Lock()
			partial.WriteString(delta)
			mu.Unlock()
		})
	}()

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	var rendered string
loop:
	for {
		select {
		case <-done:
			break loop
		case <-ticker.C:
			mu.Lock()
			snapshot := partial.String()
			mu.Unlock()

			if snapshot == "" || snapshot == rendered {
				continue
			}
			if err := render(snapshot); err != nil {
				log.Printf("[Orchestrator.HandleTurnStream] render failed userID=%s err=%v", userID, err)
				continue
			}
			rendered = snapshot
		}
	}

	if modelErr != nil {
		log.Printf("[Orchestrator.HandleTurnStream] completion failed userID=%s err=%v", userID, modelErr)
		o.flush(userID, render, FailureReply)
		return FailureReply, nil
	}

	if err := o.repo.Append(ctx, userID, memory.RoleAssistant, reply); err != nil {
		return "", err
	}

	o.flush(userID, render, reply)
	return reply, nil
}

// LastAssistantReply returns the newest assistant message of the window, for
// voice synthesis. found is false when the user has no assistant replies yet.
func (o *Orchestrator) LastAssistantReply(ctx context.Context, userID string) (reply string, found bool, err error) {
	history, err := o.repo.Window(ctx, userID, memory.DefaultLimit)
	if err != nil {
		return "", false, err
	}

	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == memory.RoleAssistant {
			return history[i].Content, true, nil
		}
	}
	return "", false, nil
}

func (o *Orchestrator) appendAndWindow(ctx context.Context, userID string, input string) ([]memory.Message, error) {
	if err := o.repo.Append(ctx, userID, memory.RoleUser, input); err != nil {
		return nil, err
	}
	// the window includes the message appended just above
	return o.repo.Window(ctx, userID, memory.DefaultLimit)
}

func (o *Orchestrator) flush(userID string, render RenderFunc, text string) {
	if err := render(text); err != nil {
		log.Printf("[Orchestrator.HandleTurnStream] final render failed userID=%s err=%v", userID, err)
	}
}
