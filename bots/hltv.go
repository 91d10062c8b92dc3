package bots

import (
	"github.com/rs/zerolog"

	"esportsbot/config"
	"esportsbot/handlers"
	"esportsbot/matches"
	"esportsbot/sources"
)

const hltvStart = `👋 Привет! Я показываю ближайшие матчи CS2.

/matches - ближайшие матчи
/help - помощь`

const hltvHelp = `<b>Команды</b>
/matches - ближайшие матчи CS2 с HLTV
/start - начать заново

Кнопка 🔄 Обновить под списком запрашивает данные еще раз. Список кэшируется на 5 минут.`

// HLTV - бот CS2: зеркало API, затем страница HLTV, затем статичный список
func HLTV(cfg *config.Config, logger zerolog.Logger) *Variant {
	logger = logger.With().Str("bot", "hltv").Logger()

	chain := matches.NewChain(logger, sources.HLTVFallback,
		sources.NewHLTVMirror(sources.NewAPIClient(cfg.RequestTimeout), cfg.HLTVAPIURL, cfg.Location),
		sources.NewHLTVPage(sources.NewPageClient(cfg.RequestTimeout), cfg.HLTVMatchesURL),
	)
	cache := matches.NewCache(chain, cfg.CacheTTL, logger, matches.WithFallbackTTL(cfg.FallbackCacheTTL))

	return &Variant{
		Name: "hltv",
		Settings: handlers.Settings{
			StartText: hltvStart,
			HelpText:  hltvHelp,
			Feeds: []handlers.Feed{{
				Command:  "matches",
				Provider: cache,
				Formatter: matches.Formatter{
					Title:     "🎮 <b>Ближайшие матчи CS2</b>",
					Footer:    "📊 Данные: HLTV.org",
					EmptyText: "Матчи не найдены",
				},
			}},
		},
	}
}
