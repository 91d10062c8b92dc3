package bots

import (
	"github.com/rs/zerolog"

	"esportsbot/config"
	"esportsbot/handlers"
	"esportsbot/matches"
	"esportsbot/sources"
)

const dotaStart = `👋 Привет! Я показываю live матчи Dota 2.

/live - матчи, которые идут сейчас
/help - помощь`

const dotaHelp = `<b>Команды</b>
/live - live матчи Dota 2 с Liquipedia и OddsPortal
/start - начать заново`

// Dota - live бот Dota 2 без кэша: Liquipedia, затем OddsPortal, затем заглушка
func Dota(cfg *config.Config, logger zerolog.Logger) *Variant {
	logger = logger.With().Str("bot", "dota").Logger()

	pages := sources.NewPageClient(cfg.RequestTimeout)
	chain := matches.NewChain(logger, sources.DotaSentinel,
		sources.NewLiquipedia(pages, cfg.LiquipediaURL),
		sources.NewOddsPortal(pages, cfg.OddsPortalURL),
	)

	return &Variant{
		Name: "dota",
		Settings: handlers.Settings{
			StartText: dotaStart,
			HelpText:  dotaHelp,
			Feeds: []handlers.Feed{{
				Command:  "live",
				Provider: matches.NewCache(chain, 0, logger),
				Formatter: matches.Formatter{
					Title:     "🔴 <b>Live матчи Dota 2</b>",
					Footer:    "📊 Данные: Liquipedia, OddsPortal",
					EmptyText: "Нет live матчей",
				},
			}},
		},
	}
}
