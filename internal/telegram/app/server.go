package app

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ozonsync_api/internal/ozon/business/services/update"
	"ozonsync_api/internal/spreadsheet"
	"ozonsync_api/internal/telegram/session"
	"ozonsync_api/pkg/logger"
)

// BotServer -- телеграм-фронт синхронизации. Держит диалоговое состояние
// оператора и запускает синхронизацию по кнопке.
type BotServer struct {
	bot       *tgbotapi.BotAPI
	sessions  session.Store
	processor *spreadsheet.Processor
	sync      *update.SyncService
	filesDir  string
	log       logger.Logger
}

func NewBotServer(bot *tgbotapi.BotAPI, sessions session.Store, processor *spreadsheet.Processor, syncService *update.SyncService, filesDir string, log logger.Logger) *BotServer {
	return &BotServer{
		bot:       bot,
		sessions:  sessions,
		processor: processor,
		sync:      syncService,
		filesDir:  filesDir,
		log:       log.WithPrefix("bot"),
	}
}

// Run consumes updates until ctx is cancelled. Messages are handled
// sequentially, so at most one sync is in flight at a time.
func (s *BotServer) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := s.bot.GetUpdatesChan(u)

	s.log.Log("bot started as @%s", s.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			s.bot.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			if upd.Message == nil {
				continue
			}
			s.handleMessage(ctx, upd.Message)
		}
	}
}

func (s *BotServer) reply(chatID int64, text string, keyboard interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	if _, err := s.bot.Send(msg); err != nil {
		s.log.Errorf("failed to send message to chat %d: %v", chatID, err)
	}
}
