package sources

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"esportsbot/matches"
)

const PandaScoreURL = "https://api.pandascore.co"

// Списки PandaScore
const (
	PandaUpcoming = "upcoming"
	PandaRunning  = "running"
)

var ErrMissingToken = errors.New("pandascore token is required")

type pandaMatch struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	BeginAt       *time.Time `json:"begin_at"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	NumberOfGames int        `json:"number_of_games"`
	Opponents     []struct {
		Opponent struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"opponent"`
	} `json:"opponents"`
	Results []struct {
		TeamID int `json:"team_id"`
		Score  int `json:"score"`
	} `json:"results"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Serie struct {
		FullName string `json:"full_name"`
	} `json:"serie"`
	Tournament struct {
		Name string `json:"name"`
	} `json:"tournament"`
}

// PandaScore запрашивает документированный REST API PandaScore
type PandaScore struct {
	client   *APIClient
	baseURL  string
	token    string
	game     string
	list     string
	location *time.Location
}

func NewPandaScore(client *APIClient, baseURL, token, game, list string, location *time.Location) (*PandaScore, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if baseURL == "" {
		baseURL = PandaScoreURL
	}
	if game == "" {
		game = "csgo"
	}
	if list == "" {
		list = PandaUpcoming
	}
	if location == nil {
		location = time.UTC
	}
	return &PandaScore{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		game:     game,
		list:     list,
		location: location,
	}, nil
}

func (s *PandaScore) Name() string { return "pandascore-" + s.list }

func (s *PandaScore) endpoint() string {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(matches.Limit))
	query.Set("sort", "begin_at")
	return fmt.Sprintf("%s/%s/matches/%s?%s", s.baseURL, url.PathEscape(s.game), s.list, query.Encode())
}

func (s *PandaScore) Fetch(ctx context.Context) matches.Outcome {
	items, err := getJSON[[]pandaMatch](ctx, s.client, s.endpoint(), s.token)
	if err != nil {
		return matches.Failed(err)
	}

	list := make([]matches.Match, 0, len(*items))
	for _, item := range *items {
		list = append(list, s.convert(item))
	}
	if len(list) > matches.Limit {
		list = list[:matches.Limit]
	}
	return matches.OK(list)
}

func (s *PandaScore) convert(item pandaMatch) matches.Match {
	m := matches.Match{
		Team1:  matches.TBD,
		Team2:  matches.TBD,
		Event:  pandaEvent(item),
		Stars:  matches.DefaultStars,
		Format: matches.DefaultFormat,
	}

	var teamIDs [2]int
	for i, o := range item.Opponents {
		if i > 1 {
			break
		}
		teamIDs[i] = o.Opponent.ID
		if name := strings.TrimSpace(o.Opponent.Name); name != "" {
			if i == 0 {
				m.Team1 = name
			} else {
				m.Team2 = name
			}
		}
	}

	if item.NumberOfGames > 0 {
		m.Format = "BO" + strconv.Itoa(item.NumberOfGames)
	}

	if item.Status == "running" {
		m.Time = matches.Live
		m.Score = pandaScore(item, teamIDs)
		return m
	}

	switch {
	case item.BeginAt != nil:
		m.Time = item.BeginAt.In(s.location).Format(ScheduleLayout)
	case item.ScheduledAt != nil:
		m.Time = item.ScheduledAt.In(s.location).Format(ScheduleLayout)
	default:
		m.Time = matches.TBD
	}
	return m
}

func pandaEvent(item pandaMatch) string {
	parts := make([]string, 0, 2)
	if name := strings.TrimSpace(item.League.Name); name != "" {
		parts = append(parts, name)
	}
	if name := strings.TrimSpace(item.Serie.FullName); name != "" {
		parts = append(parts, name)
	}
	if len(parts) == 0 {
		return strings.TrimSpace(item.Tournament.Name)
	}
	return strings.Join(parts, " ")
}

func pandaScore(item pandaMatch, teamIDs [2]int) string {
	if len(item.Results) < 2 {
		return ""
	}
	scores := [2]int{item.Results[0].Score, item.Results[1].Score}
	if teamIDs[0] == 0 || teamIDs[1] == 0 {
		return fmt.Sprintf("%d:%d", scores[0], scores[1])
	}
	for _, r := range item.Results {
		switch r.TeamID {
		case teamIDs[0]:
			scores[0] = r.Score
		case teamIDs[1]:
			scores[1] = r.Score
		}
	}
	return fmt.Sprintf("%d:%d", scores[0], scores[1])
}
