package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type CommandHandler struct {
	matchesHandler *MatchesHandler
	settings       Settings
}

func NewCommandHandler(matchesHandler *MatchesHandler, settings Settings) *CommandHandler {
	return &CommandHandler{
		matchesHandler: matchesHandler,
		settings:       settings,
	}
}

func (h *CommandHandler) CommandHandler(ctx context.Context, update *tgbotapi.Update) bool {
	if update.Message != nil && update.Message.IsCommand() {
		return h.handleCommand(ctx, update.Message)
	}
	return false
}

func (h *CommandHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) bool {
	switch command := message.Command(); command {
	case "start":
		h.matchesHandler.SendStart(chatID(message))
	case "help":
		h.matchesHandler.SendHelp(chatID(message))
	default:
		feed, ok := h.settings.feed(command)
		if !ok {
			return false
		}
		h.matchesHandler.SendMatches(ctx, chatID(message), feed)
	}
	return true
}
