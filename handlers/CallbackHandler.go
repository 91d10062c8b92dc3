package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type CallbackHandler struct {
	botHandler     *BotHandler
	matchesHandler *MatchesHandler
	settings       Settings
}

func NewCallbackHandler(botHandler *BotHandler, matchesHandler *MatchesHandler, settings Settings) *CallbackHandler {
	return &CallbackHandler{
		botHandler:     botHandler,
		matchesHandler: matchesHandler,
		settings:       settings,
	}
}

func (h *CallbackHandler) CallbackHandler(ctx context.Context, update *tgbotapi.Update) bool {
	if update.CallbackQuery != nil {
		h.handleCallback(ctx, update.CallbackQuery)
		return true
	}
	return false
}

func (h *CallbackHandler) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	var (
		feed Feed
		ok   bool
	)
	switch {
	case callback.Data == RefreshData:
		feed, ok = h.settings.defaultFeed()
	case strings.HasPrefix(callback.Data, refreshPrefix):
		feed, ok = h.settings.feed(strings.TrimPrefix(callback.Data, refreshPrefix))
	}

	if !ok {
		h.botHandler.AnswerCallback(callback.ID, "Неизвестная команда")
		return
	}
	h.matchesHandler.RefreshMatches(ctx, callback, feed)
}
