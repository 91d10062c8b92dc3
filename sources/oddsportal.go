package sources

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"esportsbot/matches"
)

const OddsPortalURL = "https://www.oddsportal.com/esports/dota-2/"

// OddsPortal - запасной источник live матчей Dota 2 с сайта букмекерских коэффициентов
type OddsPortal struct {
	client *PageClient
	url    string
}

func NewOddsPortal(client *PageClient, url string) *OddsPortal {
	if url == "" {
		url = OddsPortalURL
	}
	return &OddsPortal{client: client, url: url}
}

func (s *OddsPortal) Name() string { return "oddsportal" }

func (s *OddsPortal) Fetch(ctx context.Context) matches.Outcome {
	doc, err := s.client.Document(ctx, s.url)
	if err != nil {
		return matches.Failed(err)
	}

	list := ParseOddsPortal(doc)
	if len(list) > matches.Limit {
		list = list[:matches.Limit]
	}
	return matches.OK(list)
}

// ParseOddsPortal возвращает только live строки страницы
func ParseOddsPortal(doc *goquery.Document) []matches.Match {
	var list []matches.Match
	tournament := ""

	doc.Find("div.eventRow").Each(func(i int, row *goquery.Selection) {
		// название турнира указывается только в первой строке группы
		if name := cleanText(row.Find(".tournament-name").First().Text()); name != "" {
			tournament = name
		}

		if !isOddsPortalLive(row) {
			return
		}

		participants := row.Find(".participant-name")
		if participants.Length() < 2 {
			return
		}

		m := matches.Match{
			Team1:  orTBD(cleanText(participants.Eq(0).Text())),
			Team2:  orTBD(cleanText(participants.Eq(1).Text())),
			Event:  tournament,
			Time:   matches.Live,
			Stars:  matches.DefaultStars,
			Format: matches.DefaultFormat,
		}
		if found := scorePattern.FindStringSubmatch(cleanText(row.Find(".live-score").First().Text())); found != nil {
			m.Score = found[1] + ":" + found[2]
		}
		list = append(list, m)
	})

	return list
}

func isOddsPortalLive(row *goquery.Selection) bool {
	if row.HasClass("live") || row.Find(".live-indicator").Length() > 0 {
		return true
	}
	return strings.EqualFold(cleanText(row.Find(".event-time").First().Text()), "live")
}

func orTBD(name string) string {
	if name == "" {
		return matches.TBD
	}
	return name
}
