package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"ozonsync_api/internal/telegram/session"
	"ozonsync_api/pkg/apperr"
)

const missingReportLimit = 50

func (s *BotServer) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch {
	case msg.IsCommand():
		s.handleCommand(ctx, msg)
	case msg.Text == btnSetRate:
		sess := s.sessions.Get(chatID)
		sess.State = session.StateAwaitingRate
		s.sessions.Put(chatID, sess)
		s.reply(chatID, "Пожалуйста, введите курс евро к рублю (например, 80.5):", tgbotapi.NewRemoveKeyboard(false))
	case msg.Text == btnAddFile:
		sess := s.sessions.Get(chatID)
		sess.State = session.StateAwaitingFile
		s.sessions.Put(chatID, sess)
		s.reply(chatID, "Пришлите файл с товарами (.xlsx, .xls или .csv).", tgbotapi.NewRemoveKeyboard(false))
	case msg.Text == btnUpdate:
		s.runSync(ctx, chatID)
	default:
		sess := s.sessions.Get(chatID)
		switch sess.State {
		case session.StateAwaitingRate:
			s.processRate(chatID, msg.Text)
		case session.StateAwaitingFile:
			if msg.Document != nil {
				s.processFile(chatID, msg.Document)
			} else {
				s.reply(chatID, "Ожидаю файл с товарами. Пришлите документ.", nil)
			}
		default:
			s.reply(chatID, "Используйте кнопки меню.", mainKeyboard)
		}
	}
}

func (s *BotServer) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		s.sessions.Clear(chatID)
		s.reply(chatID, "Привет! Введите курс евро к рублю и загрузите файл с товарами, чтобы обновить их на Ozon.", mainKeyboard)
	case "count":
		count, err := s.sync.CatalogCount(ctx)
		if err != nil {
			s.reply(chatID, s.operatorError(err), nil)
			return
		}
		s.reply(chatID, fmt.Sprintf("Общее количество товаров на Ozon: %d.", count), mainKeyboard)
	case "missing":
		s.reportMissing(ctx, chatID)
	default:
		s.reply(chatID, "Неизвестная команда.", mainKeyboard)
	}
}

func (s *BotServer) processRate(chatID int64, text string) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	rate, err := decimal.NewFromString(text)
	if err != nil || !rate.IsPositive() {
		s.reply(chatID, "Некорректный курс. Введите число больше нуля.", nil)
		return
	}

	sess := s.sessions.Get(chatID)
	sess.Rate = rate
	sess.HasRate = true
	sess.State = session.StateIdle
	s.sessions.Put(chatID, sess)
	s.reply(chatID, fmt.Sprintf("Курс сохранён: %s", rate), mainKeyboard)
}

func (s *BotServer) processFile(chatID int64, doc *tgbotapi.Document) {
	name := strings.ToLower(doc.FileName)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") && !strings.HasSuffix(name, ".csv") {
		s.reply(chatID, "Неподдерживаемый формат. Отправьте .xlsx, .xls или .csv.", nil)
		return
	}

	path, err := s.downloadDocument(chatID, doc)
	if err != nil {
		s.log.Errorf("file download failed for chat %d: %v", chatID, err)
		s.reply(chatID, "Не удалось загрузить файл. Попробуйте ещё раз.", nil)
		return
	}

	// Ранняя валидация: битый файл лучше отклонить при загрузке,
	// а не в момент синхронизации.
	rows, err := s.processor.ReadFile(path)
	if err != nil {
		s.reply(chatID, fmt.Sprintf("Ошибка обработки файла: %v", err), nil)
		return
	}

	sess := s.sessions.Get(chatID)
	sess.FilePath = path
	sess.State = session.StateIdle
	s.sessions.Put(chatID, sess)
	s.reply(chatID, fmt.Sprintf("Файл успешно загружен и обработан. Строк с товарами: %d.", len(rows)), mainKeyboard)
}

func (s *BotServer) downloadDocument(chatID int64, doc *tgbotapi.Document) (string, error) {
	url, err := s.bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.filesDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.filesDir, fmt.Sprintf("%d_%s", chatID, doc.FileName))

	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status downloading file: %s", resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", err
	}
	return path, nil
}

func (s *BotServer) runSync(ctx context.Context, chatID int64) {
	sess := s.sessions.Get(chatID)
	if !sess.HasRate {
		s.reply(chatID, "Сначала введите курс евро к рублю!", mainKeyboard)
		return
	}
	if sess.FilePath == "" {
		s.reply(chatID, "Сначала загрузите файл с товарами!", mainKeyboard)
		return
	}

	rows, err := s.processor.ReadFile(sess.FilePath)
	if err != nil {
		s.reply(chatID, fmt.Sprintf("Не удалось прочитать файл: %v", err), mainKeyboard)
		return
	}

	report, err := s.sync.Run(ctx, sess.Rate, rows)
	if err != nil {
		s.reply(chatID, s.operatorError(err), mainKeyboard)
		return
	}

	s.reply(chatID, fmt.Sprintf("Обновление завершено! Успешно обновлено %d позиций по курсу %s.", report.UpdatedCount, report.Rate), mainKeyboard)
}

func (s *BotServer) reportMissing(ctx context.Context, chatID int64) {
	sess := s.sessions.Get(chatID)
	if sess.FilePath == "" {
		s.reply(chatID, "Сначала загрузите файл с товарами!", mainKeyboard)
		return
	}

	rows, err := s.processor.ReadFile(sess.FilePath)
	if err != nil {
		s.reply(chatID, fmt.Sprintf("Не удалось прочитать файл: %v", err), mainKeyboard)
		return
	}

	missing, err := s.sync.MissingArticles(ctx, rows)
	if err != nil {
		s.reply(chatID, s.operatorError(err), mainKeyboard)
		return
	}
	if len(missing) == 0 {
		s.reply(chatID, "Все артикулы из таблицы найдены на Ozon.", mainKeyboard)
		return
	}

	shown := missing
	truncated := ""
	if len(shown) > missingReportLimit {
		shown = shown[:missingReportLimit]
		truncated = fmt.Sprintf("\n... и ещё %d", len(missing)-missingReportLimit)
	}
	s.reply(chatID, fmt.Sprintf("Артикулы из таблицы, не найденные на Ozon (%d):\n%s%s",
		len(missing), strings.Join(shown, "\n"), truncated), mainKeyboard)
}

// operatorError переводит ошибку в одну строку для оператора.
// Внутренние детали остаются в логах.
func (s *BotServer) operatorError(err error) string {
	s.log.Errorf("sync failed: %v", err)
	switch {
	case apperr.IsRejected(err):
		return fmt.Sprintf("Ошибка запроса к Ozon: %v", err)
	case apperr.IsUnavailable(err):
		return "Не удалось получить данные от Ozon. Попробуйте позже."
	default:
		return "Не удалось получить данные от Ozon."
	}
}
