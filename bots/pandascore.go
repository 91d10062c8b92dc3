package bots

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"esportsbot/config"
	"esportsbot/handlers"
	"esportsbot/matches"
	"esportsbot/sources"
)

var gameTitles = map[string]string{
	"csgo":     "CS2",
	"dota2":    "Dota 2",
	"lol":      "League of Legends",
	"valorant": "Valorant",
}

// PandaScore - бот поверх REST API PandaScore, без кэша и без резервных данных
func PandaScore(cfg *config.Config, logger zerolog.Logger) (*Variant, error) {
	logger = logger.With().Str("bot", "pandascore").Str("game", cfg.PandaScoreGame).Logger()

	api := sources.NewAPIClient(cfg.RequestTimeout)
	upcoming, err := sources.NewPandaScore(api, cfg.PandaScoreURL, cfg.PandaScoreToken, cfg.PandaScoreGame, sources.PandaUpcoming, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("pandascore upcoming: %w", err)
	}
	running, err := sources.NewPandaScore(api, cfg.PandaScoreURL, cfg.PandaScoreToken, cfg.PandaScoreGame, sources.PandaRunning, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("pandascore running: %w", err)
	}

	title, ok := gameTitles[cfg.PandaScoreGame]
	if !ok {
		title = strings.ToUpper(cfg.PandaScoreGame)
	}

	return &Variant{
		Name: "pandascore",
		Settings: handlers.Settings{
			StartText: fmt.Sprintf("👋 Привет! Я показываю матчи %s по данным PandaScore.\n\n/matches - ближайшие матчи\n/live - идущие матчи\n/help - помощь", title),
			HelpText:  fmt.Sprintf("<b>Команды</b>\n/matches - ближайшие матчи %s\n/live - матчи, которые идут сейчас\n/start - начать заново", title),
			Feeds: []handlers.Feed{
				{
					Command:  "matches",
					Provider: matches.NewCache(matches.NewChain(logger, nil, upcoming), 0, logger),
					Formatter: matches.Formatter{
						Title:     fmt.Sprintf("🎮 <b>Ближайшие матчи %s</b>", title),
						Footer:    "📊 Данные: PandaScore",
						EmptyText: "❌ Матчи не найдены",
					},
				},
				{
					Command:  "live",
					Provider: matches.NewCache(matches.NewChain(logger, nil, running), 0, logger),
					Formatter: matches.Formatter{
						Title:     fmt.Sprintf("🔴 <b>Live матчи %s</b>", title),
						Footer:    "📊 Данные: PandaScore",
						EmptyText: "❌ Матчи не найдены",
					},
				},
			},
		},
	}, nil
}
