package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Sender - часть *tgbotapi.BotAPI, которой пользуются обработчики
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Handler возвращает true, если обработал обновление
type Handler func(ctx context.Context, update *tgbotapi.Update) bool

// Button - кнопка inline клавиатуры
type Button struct {
	Title string
	Data  string
}

type BotHandler struct {
	bot      Sender
	handlers []Handler
	logger   zerolog.Logger
}

func NewBotHandler(bot Sender, logger zerolog.Logger) *BotHandler {
	return &BotHandler{
		bot:      bot,
		handlers: []Handler{},
		logger:   logger,
	}
}

func (b *BotHandler) AddHandler(handler Handler) {
	b.handlers = append(b.handlers, handler)
}

// Run читает обновления, пока не закроется канал или не отменится контекст
func (b *BotHandler) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.Dispatch(ctx, &update)
		}
	}
}

// Dispatch отдает обновление первому обработчику, который его примет
func (b *BotHandler) Dispatch(ctx context.Context, update *tgbotapi.Update) {
	if update.Message == nil && update.CallbackQuery == nil {
		return
	}

	handled := false
	for _, handler := range b.handlers {
		if handler(ctx, update) {
			handled = true
			break
		}
	}

	event := b.logger.Info().Int("update_id", update.UpdateID).Bool("handled", handled)
	if update.Message != nil {
		event.Int64("chat_id", chatID(update.Message)).
			Str("user", userName(update.Message.From)).
			Str("text", update.Message.Text).
			Msg("message received")
	} else {
		event.Str("user", userName(update.CallbackQuery.From)).
			Str("data", update.CallbackQuery.Data).
			Msg("callback received")
	}
}

func (b *BotHandler) SendTextMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	b.send(msg)
}

func (b *BotHandler) SendHTMLMessageWithMarkup(chatID int64, text string, replyMarkup tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	msg.ReplyMarkup = replyMarkup
	b.send(msg)
}

func (b *BotHandler) SendTextMessageWithKeyboardMarkup(chatID int64, text string, replyMarkup tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = replyMarkup
	b.send(msg)
}

// EditHTMLMessage заменяет текст уже отправленного сообщения
func (b *BotHandler) EditHTMLMessage(chatID int64, messageID int, text string, replyMarkup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	edit.ReplyMarkup = &replyMarkup
	if _, err := b.bot.Request(edit); err != nil {
		// Telegram отвечает ошибкой, если текст не изменился
		if strings.Contains(err.Error(), "message is not modified") {
			b.logger.Debug().Int64("chat_id", chatID).Int("message_id", messageID).Msg("message not modified")
			return
		}
		b.logger.Error().Err(err).Int64("chat_id", chatID).Int("message_id", messageID).Msg("failed to edit message")
	}
}

func (b *BotHandler) AnswerCallback(callbackID, text string) {
	if _, err := b.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Warn().Err(err).Str("callback_id", callbackID).Msg("failed to answer callback")
	}
}

func (b *BotHandler) send(msg tgbotapi.MessageConfig) {
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", msg.ChatID).Msg("failed to send message")
	}
}

func (b *BotHandler) SetKeyboardButtons(buttons []string, coloumsCount int) tgbotapi.ReplyKeyboardMarkup {
	var keyboard [][]tgbotapi.KeyboardButton
	var row []tgbotapi.KeyboardButton
	for i, button := range buttons {
		row = append(row, tgbotapi.NewKeyboardButton(button))
		if (i+1)%coloumsCount == 0 {
			keyboard = append(keyboard, row)
			row = []tgbotapi.KeyboardButton{}
		}
	}
	if len(row) > 0 {
		keyboard = append(keyboard, row)
	}

	markup := tgbotapi.NewReplyKeyboard(keyboard...)
	markup.ResizeKeyboard = true
	return markup
}

func (b *BotHandler) SetInlineKeybordButtons(buttons []Button, columnsCount int) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for i, button := range buttons {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(button.Title, button.Data))
		if (i+1)%columnsCount == 0 {
			keyboard = append(keyboard, row)
			row = []tgbotapi.InlineKeyboardButton{}
		}
	}
	if len(row) > 0 {
		keyboard = append(keyboard, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

func chatID(message *tgbotapi.Message) int64 {
	if message == nil || message.Chat == nil {
		return 0
	}
	return message.Chat.ID
}

func userName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	return user.UserName
}
