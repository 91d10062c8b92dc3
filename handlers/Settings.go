package handlers

import (
	"context"

	"esportsbot/matches"
)

// Provider отдает матчи; *matches.Cache его реализует
type Provider interface {
	UpcomingMatches(ctx context.Context) []matches.Match
}

// Feed связывает команду бота с источником и форматом сообщения
type Feed struct {
	Command   string
	Provider  Provider
	Formatter matches.Formatter
}

// Settings описывает конкретный вариант бота
type Settings struct {
	StartText string
	HelpText  string
	// Feeds[0] используется кнопкой "Матчи" и callback "refresh"
	Feeds []Feed
}

func (s Settings) feed(command string) (Feed, bool) {
	for _, f := range s.Feeds {
		if f.Command == command {
			return f, true
		}
	}
	return Feed{}, false
}

func (s Settings) defaultFeed() (Feed, bool) {
	if len(s.Feeds) == 0 {
		return Feed{}, false
	}
	return s.Feeds[0], true
}
