package sources

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"esportsbot/matches"
)

const LiquipediaURL = "https://liquipedia.net/dota2/Liquipedia:Matches"

var (
	scorePattern  = regexp.MustCompile(`(\d+)\s*:\s*(\d+)`)
	formatPattern = regexp.MustCompile(`(?i)bo\s*(\d+)`)
)

// Liquipedia парсит таблицы матчей Liquipedia и оставляет только идущие
type Liquipedia struct {
	client *PageClient
	url    string
}

func NewLiquipedia(client *PageClient, url string) *Liquipedia {
	if url == "" {
		url = LiquipediaURL
	}
	return &Liquipedia{client: client, url: url}
}

func (s *Liquipedia) Name() string { return "liquipedia" }

func (s *Liquipedia) Fetch(ctx context.Context) matches.Outcome {
	doc, err := s.client.Document(ctx, s.url)
	if err != nil {
		return matches.Failed(err)
	}

	var live []matches.Match
	for _, m := range ParseLiquipedia(doc) {
		if m.IsLive() {
			live = append(live, m)
		}
	}
	if len(live) > matches.Limit {
		live = live[:matches.Limit]
	}
	return matches.OK(live)
}

// ParseLiquipedia извлекает все матчи из таблиц infobox_matches_content
func ParseLiquipedia(doc *goquery.Document) []matches.Match {
	var list []matches.Match

	doc.Find("table.infobox_matches_content").Each(func(i int, table *goquery.Selection) {
		m := matches.Match{
			Team1:  teamName(table.Find("td.team-left").First()),
			Team2:  teamName(table.Find("td.team-right").First()),
			Stars:  matches.DefaultStars,
			Format: matches.DefaultFormat,
		}

		versus := cleanText(table.Find("td.versus").First().Text())
		if found := formatPattern.FindStringSubmatch(versus); found != nil {
			m.Format = "BO" + found[1]
		}

		timer := table.Find(".timer-object").First()
		m.Time = cleanText(timer.Text())
		m.Event = cleanText(table.Find(".match-filler .tournament-text").First().Text())

		if found := scorePattern.FindStringSubmatch(versus); found != nil {
			m.Time = matches.Live
			m.Score = found[1] + ":" + found[2]
		} else if timer.HasClass("timer-object-countdown-live") {
			m.Time = matches.Live
		}

		list = append(list, m)
	})

	return list
}

func teamName(cell *goquery.Selection) string {
	name := cleanText(cell.Find(".team-template-text").First().Text())
	if name == "" {
		name = cleanText(cell.Text())
	}
	if name == "" {
		return matches.TBD
	}
	return name
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
