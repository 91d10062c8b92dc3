package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonMatches = "📅 Матчи"
	ButtonHelp    = "ℹ️ Помощь"

	RefreshData   = "refresh"
	refreshPrefix = RefreshData + ":"
)

type MatchesHandler struct {
	botHandler *BotHandler
	settings   Settings
}

func NewMatchesHandler(botHandler *BotHandler, settings Settings) *MatchesHandler {
	return &MatchesHandler{
		botHandler: botHandler,
		settings:   settings,
	}
}

// MatchesHandler обрабатывает кнопки обычной клавиатуры
func (h *MatchesHandler) MatchesHandler(ctx context.Context, update *tgbotapi.Update) bool {
	if update.Message == nil {
		return false
	}

	switch strings.TrimSpace(update.Message.Text) {
	case ButtonMatches:
		if feed, ok := h.settings.defaultFeed(); ok {
			h.SendMatches(ctx, chatID(update.Message), feed)
			return true
		}
	case ButtonHelp:
		h.SendHelp(chatID(update.Message))
		return true
	}
	return false
}

// SendMatches отправляет список матчей с кнопкой обновления
func (h *MatchesHandler) SendMatches(ctx context.Context, chatID int64, feed Feed) {
	text := feed.Formatter.Format(feed.Provider.UpcomingMatches(ctx))
	h.botHandler.SendHTMLMessageWithMarkup(chatID, text, h.refreshKeyboard(feed))
}

// RefreshMatches перезапрашивает матчи и редактирует сообщение с кнопкой
func (h *MatchesHandler) RefreshMatches(ctx context.Context, callback *tgbotapi.CallbackQuery, feed Feed) {
	h.botHandler.AnswerCallback(callback.ID, "🔄 Обновляю...")
	if callback.Message == nil {
		return
	}

	text := feed.Formatter.Format(feed.Provider.UpcomingMatches(ctx))
	h.botHandler.EditHTMLMessage(chatID(callback.Message), callback.Message.MessageID, text, h.refreshKeyboard(feed))
}

func (h *MatchesHandler) SendStart(chatID int64) {
	buttons := []string{ButtonMatches, ButtonHelp}
	keyboard := h.botHandler.SetKeyboardButtons(buttons, 2)
	h.botHandler.SendTextMessageWithKeyboardMarkup(chatID, h.settings.StartText, keyboard)
}

func (h *MatchesHandler) SendHelp(chatID int64) {
	feed, ok := h.settings.defaultFeed()
	if !ok {
		h.botHandler.SendTextMessage(chatID, h.settings.HelpText)
		return
	}
	buttons := []Button{{Title: ButtonMatches, Data: refreshData(h.settings, feed)}}
	h.botHandler.SendHTMLMessageWithMarkup(chatID, h.settings.HelpText, h.botHandler.SetInlineKeybordButtons(buttons, 1))
}

func (h *MatchesHandler) refreshKeyboard(feed Feed) tgbotapi.InlineKeyboardMarkup {
	buttons := []Button{{Title: "🔄 Обновить", Data: refreshData(h.settings, feed)}}
	return h.botHandler.SetInlineKeybordButtons(buttons, 1)
}

// refreshData - "refresh" для основной ленты, "refresh:<команда>" для остальных
func refreshData(settings Settings, feed Feed) string {
	if primary, ok := settings.defaultFeed(); ok && primary.Command == feed.Command {
		return RefreshData
	}
	return refreshPrefix + feed.Command
}
