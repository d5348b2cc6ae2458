package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/example/wortbot/internal/delivery"
	"github.com/example/wortbot/pkg/models"
)

// quizSession is an in-flight interactive quiz for one chat.
type quizSession struct {
	Quiz    models.Quiz
	Answers []models.Answer
}

// Bot is the interactive Telegram bot. Updates are handled sequentially;
// per-chat quiz state lives in memory and is lost on restart.
type Bot struct {
	tg       *Telegram
	svc      *delivery.Service
	logger   *zap.Logger
	adminIDs map[int64]bool
	quizzes  map[int64]*quizSession
}

// New creates the interactive bot.
func New(tg *Telegram, svc *delivery.Service, logger *zap.Logger, adminIDs []int64) *Bot {
	b := &Bot{
		tg:       tg,
		svc:      svc,
		logger:   logger,
		adminIDs: make(map[int64]bool, len(adminIDs)),
		quizzes:  make(map[int64]*quizSession),
	}
	for _, id := range adminIDs {
		b.adminIDs[id] = true
	}
	return b
}

// Start runs the long-polling update loop until Stop is called.
func (b *Bot) Start() error {
	b.logger.Info("bot authorized", zap.String("username", b.tg.API().Self.UserName))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for update := range b.tg.API().GetUpdatesChan(updateConfig) {
		b.handleUpdate(update)
	}
	return nil
}

// Stop terminates the update loop.
func (b *Bot) Stop() {
	b.tg.API().StopReceivingUpdates()
	b.logger.Info("bot stopped")
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.adminIDs[userID]
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleText(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	switch message.Command() {
	case "start":
		b.handleStart(chatID)
	case "word":
		b.handleWord(chatID)
	case "quiz":
		b.handleQuiz(chatID)
	case "stats":
		b.handleStats(chatID)
	case "report":
		b.handleReport(chatID)
	case "help":
		b.handleStart(chatID)
	case "import":
		if b.isAdmin(message.From.ID) {
			b.reply(chatID, "Run the import subcommand on the server:\nwortbot import -file words.xlsx")
		} else {
			b.reply(chatID, "This command is only available for administrators.")
		}
	default:
		b.reply(chatID, "Unknown command. Use /help to see what I can do.")
	}
}

func (b *Bot) handleStart(chatID int64) {
	b.reply(chatID, `Willkommen! 🇩🇪 I help you learn German vocabulary.

Available commands:
/word — get today's German words
/quiz — take a quiz on your learned words
/stats — see your learning statistics
/report — get your weekly summary
/help — show this message

You'll also receive daily words and quizzes automatically. Viel Erfolg!`)
}

func (b *Bot) handleWord(chatID int64) {
	id := strconv.FormatInt(chatID, 10)
	rec := b.svc.Record(id)
	if rec.LastLessonDate == time.Now().Format("2006-01-02") {
		b.reply(chatID, "📖 You already got today's words. Come back tomorrow, or try /quiz!")
		return
	}
	if err := b.svc.DeliverLesson(id); err != nil {
		b.logger.Error("lesson delivery failed", zap.String("chat_id", id), zap.Error(err))
		b.reply(chatID, "Sorry, something went wrong sending your words. Please try again later.")
	}
}

func (b *Bot) handleQuiz(chatID int64) {
	id := strconv.FormatInt(chatID, 10)
	rec := b.svc.Record(id)

	q := b.svc.BuildQuiz(rec, 5, "interactive", time.Now())
	if len(q.Questions) == 0 {
		b.reply(chatID, "🧠 Learn a few words with /word first — then I'll have something to quiz you on!")
		return
	}

	b.quizzes[chatID] = &quizSession{Quiz: q}
	b.reply(chatID, fmt.Sprintf("🧠 Quiz time! %d questions — answer each one as it comes.", len(q.Questions)))
	b.sendQuestion(chatID)
}

// sendQuestion presents the session's next question. Multiple choice gets an
// inline keyboard; free-text kinds expect a typed reply.
func (b *Bot) sendQuestion(chatID int64) {
	session := b.quizzes[chatID]
	if session == nil {
		return
	}
	idx := len(session.Answers)
	q := session.Quiz.Questions[idx]

	text := fmt.Sprintf("Question %d/%d:\n%s", idx+1, len(session.Quiz.Questions), q.Prompt)

	switch q.Kind {
	case models.KindMultipleChoice:
		var rows [][]tgbotapi.InlineKeyboardButton
		for i, opt := range q.Options {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%c) %s", 'A'+i, opt), fmt.Sprintf("ans:%d", i)),
			))
		}
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
		if _, err := b.tg.API().Send(msg); err != nil {
			b.logger.Error("failed to send question", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	case models.KindConstruction:
		text += "\n🧩 Words: " + strings.Join(q.WordParts, ", ")
		if q.Hint != "" {
			text += "\n💡 " + q.Hint
		}
		b.reply(chatID, text+"\n\nType your sentence:")
	default:
		if q.Hint != "" {
			text += "\n💡 " + q.Hint
		}
		b.reply(chatID, text+"\n\nType your answer:")
	}
}

// handleText treats free text as the answer to the current quiz question
// when a session is active.
func (b *Bot) handleText(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	session := b.quizzes[chatID]
	if session == nil {
		b.reply(chatID, "I don't understand. Use /help to see available commands.")
		return
	}
	b.recordAnswer(chatID, models.Answer{Index: -1, Text: message.Text})
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Acknowledge the button press.
	if _, err := b.tg.API().Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.logger.Warn("callback ack failed", zap.Error(err))
	}

	if !strings.HasPrefix(data, "ans:") {
		return
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(data, "ans:"))
	if err != nil {
		return
	}
	if b.quizzes[chatID] == nil {
		b.reply(chatID, "That quiz has expired. Start a new one with /quiz.")
		return
	}
	b.recordAnswer(chatID, models.Answer{Index: idx})
}

// recordAnswer appends the answer and either advances to the next question
// or grades the finished quiz.
func (b *Bot) recordAnswer(chatID int64, answer models.Answer) {
	session := b.quizzes[chatID]
	session.Answers = append(session.Answers, answer)

	if len(session.Answers) < len(session.Quiz.Questions) {
		b.sendQuestion(chatID)
		return
	}

	delete(b.quizzes, chatID)
	id := strconv.FormatInt(chatID, 10)
	if _, err := b.svc.CompleteQuiz(id, session.Quiz, session.Answers); err != nil {
		b.logger.Error("quiz completion failed", zap.String("chat_id", id), zap.Error(err))
	}
}

func (b *Bot) handleStats(chatID int64) {
	id := strconv.FormatInt(chatID, 10)
	rec := b.svc.Record(id)
	if err := b.tg.SendText(id, delivery.FormatStats(rec, b.svc.Tracker(), time.Now())); err != nil {
		b.logger.Error("failed to send stats", zap.String("chat_id", id), zap.Error(err))
	}
}

func (b *Bot) handleReport(chatID int64) {
	id := strconv.FormatInt(chatID, 10)
	if err := b.svc.DeliverWeeklyReport(id); err != nil {
		b.logger.Error("report delivery failed", zap.String("chat_id", id), zap.Error(err))
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if err := b.tg.SendText(strconv.FormatInt(chatID, 10), text); err != nil {
		b.logger.Error("failed to send reply", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
