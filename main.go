package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-telegram/bot"
	_ "github.com/mattn/go-sqlite3"

	"github.com/glebzinovew-create/telegram-gpt-bot/internal/ai/gpt"
	internalbot "github.com/glebzinovew-create/telegram-gpt-bot/internal/bot"
	"github.com/glebzinovew-create/telegram-gpt-bot/internal/chat"
	"github.com/glebzinovew-create/telegram-gpt-bot/internal/config"
	memorysqlite "github.com/glebzinovew-create/telegram-gpt-bot/internal/db/memory/sqlite"
	settingssqlite "github.com/glebzinovew-create/telegram-gpt-bot/internal/db/settings/sqlite"
	"github.com/glebzinovew-create/telegram-gpt-bot/internal/speech"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite3", cfg.DbPath)
	if err != nil {
		log.Fatal(err)
	}

	repository := memorysqlite.NewRepositorySQLite(db)
	if err := repository.Init(); err != nil {
		log.Fatal("Cannot initialize memory repository: ", err, " ", cfg.DbPath)
	}
	defer func(repository *memorysqlite.RepositorySQLite) {
		if err := repository.Close(); err != nil {
			log.Println(err)
		}
	}(repository)

	prefs := settingssqlite.NewRepositorySQLite(db)
	if err := prefs.Init(); err != nil {
		log.Fatal("Cannot initialize settings repository: ", err, " ", cfg.DbPath)
	}

	client := gpt.NewClient(cfg.OpenAIKey)
	model := gpt.NewModelGPT(client, cfg.ChatModel)
	bridge := speech.NewBridge(client, cfg.TranscribeModel, cfg.SpeechModel, cfg.SpeechVoice)
	orchestrator := chat.NewOrchestrator(model, repository)

	httpClient := &http.Client{Timeout: time.Second * 60}

	dispatcher := &internalbot.Dispatcher{
		Text:  internalbot.NewTextHandler(orchestrator),
		Voice: internalbot.NewVoiceHandler(orchestrator, bridge, httpClient),
		Speak: internalbot.NewSpeakHandler(orchestrator, bridge, prefs),
		Reset: internalbot.NewResetHandler(repository),
		Help:  internalbot.NewHelpHandler(),
	}

	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(dispatcher.Handle))
	if err != nil {
		log.Fatal(err)
	}

	start := internalbot.NewStartHandler()
	voicePref := internalbot.NewVoiceSettingsHandler(prefs, cfg.SpeechVoice)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, start.Handle)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/voice", bot.MatchTypePrefix, voicePref.Handle)

	log.Println("Bot running...")
	b.Start(ctx)
}
