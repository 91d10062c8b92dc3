package sources

import (
	"context"
	"regexp"
	"strings"
	"time"

	"esportsbot/matches"
)

const (
	HLTVMirrorURL  = "https://hltv-api.vercel.app/api/matches.json"
	HLTVMatchesURL = "https://www.hltv.org/matches"

	hltvPageEvent = "CS2 Tournament"
	hltvPageTime  = "Скоро"
	hltvPageStars = 2

	// ScheduleLayout - формат времени матча в сообщениях
	ScheduleLayout = "02.01 15:04"
)

// CSKeywords отличают турниры CS от прочих дисциплин в зеркале HLTV
var CSKeywords = []string{"cs", "counter"}

var teamNamePattern = regexp.MustCompile(`class="matchTeamName[^"]*">([^<]+)<`)

type hltvMirrorMatch struct {
	ID    int    `json:"id"`
	Time  string `json:"time"`
	Stars int    `json:"stars"`
	Maps  string `json:"maps"`
	Live  bool   `json:"live"`
	Event struct {
		Name string `json:"name"`
	} `json:"event"`
	Teams []struct {
		Name string `json:"name"`
	} `json:"teams"`
}

// HLTVMirror - неофициальное JSON-зеркало HLTV
type HLTVMirror struct {
	client   *APIClient
	url      string
	location *time.Location
}

func NewHLTVMirror(client *APIClient, url string, location *time.Location) *HLTVMirror {
	if url == "" {
		url = HLTVMirrorURL
	}
	if location == nil {
		location = time.UTC
	}
	return &HLTVMirror{client: client, url: url, location: location}
}

func (s *HLTVMirror) Name() string { return "hltv-api" }

func (s *HLTVMirror) Fetch(ctx context.Context) matches.Outcome {
	items, err := getJSON[[]hltvMirrorMatch](ctx, s.client, s.url, "")
	if err != nil {
		return matches.Failed(err)
	}

	list := make([]matches.Match, 0, len(*items))
	for _, item := range *items {
		list = append(list, s.convert(item))
	}

	list = matches.FilterByKeywords(list, CSKeywords...)
	if len(list) > matches.Limit {
		list = list[:matches.Limit]
	}
	return matches.OK(list)
}

func (s *HLTVMirror) convert(item hltvMirrorMatch) matches.Match {
	m := matches.Match{
		Team1:  matches.TBD,
		Team2:  matches.TBD,
		Event:  strings.TrimSpace(item.Event.Name),
		Time:   formatSchedule(item.Time, s.location),
		Stars:  item.Stars,
		Format: strings.ToUpper(strings.TrimSpace(item.Maps)),
	}
	if len(item.Teams) > 0 && strings.TrimSpace(item.Teams[0].Name) != "" {
		m.Team1 = strings.TrimSpace(item.Teams[0].Name)
	}
	if len(item.Teams) > 1 && strings.TrimSpace(item.Teams[1].Name) != "" {
		m.Team2 = strings.TrimSpace(item.Teams[1].Name)
	}
	if m.Stars <= 0 {
		m.Stars = matches.DefaultStars
	}
	if m.Format == "" {
		m.Format = matches.DefaultFormat
	}
	if item.Live {
		m.Time = matches.Live
	}
	return m
}

// formatSchedule переводит ISO-время в локальное, нераспознанное оставляет как есть
func formatSchedule(raw string, location *time.Location) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return hltvPageTime
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.In(location).Format(ScheduleLayout)
}

// HLTVPage вытаскивает названия команд со страницы матчей HLTV регулярным выражением
type HLTVPage struct {
	client *PageClient
	url    string
}

func NewHLTVPage(client *PageClient, url string) *HLTVPage {
	if url == "" {
		url = HLTVMatchesURL
	}
	return &HLTVPage{client: client, url: url}
}

func (s *HLTVPage) Name() string { return "hltv-page" }

func (s *HLTVPage) Fetch(ctx context.Context) matches.Outcome {
	body, err := s.client.Get(ctx, s.url)
	if err != nil {
		return matches.Failed(err)
	}

	list := PairTeams(ExtractTeamNames(string(body)))
	if len(list) > matches.Limit {
		list = list[:matches.Limit]
	}
	return matches.OK(list)
}

// ExtractTeamNames находит все названия команд в HTML страницы матчей
func ExtractTeamNames(page string) []string {
	var names []string
	for _, found := range teamNamePattern.FindAllStringSubmatch(page, -1) {
		if name := strings.TrimSpace(found[1]); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// PairTeams собирает матчи из соседних названий, пары с TBD отбрасываются
func PairTeams(names []string) []matches.Match {
	var list []matches.Match
	for i := 0; i+1 < len(names); i += 2 {
		team1, team2 := names[i], names[i+1]
		if strings.Contains(team1, matches.TBD) || strings.Contains(team2, matches.TBD) {
			continue
		}
		list = append(list, matches.Match{
			Team1:  team1,
			Team2:  team2,
			Event:  hltvPageEvent,
			Time:   hltvPageTime,
			Stars:  hltvPageStars,
			Format: matches.DefaultFormat,
		})
	}
	return list
}
