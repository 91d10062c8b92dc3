package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"esportsbot/matches"
)

const pandaPayload = `[
	{"id": 10, "status": "not_started", "begin_at": "2026-10-14T15:00:00Z", "number_of_games": 3,
	 "opponents": [{"opponent": {"id": 1, "name": "NAVI"}}, {"opponent": {"id": 2, "name": "FaZe"}}],
	 "league": {"name": "ESL"}, "serie": {"full_name": "Pro League Season 22"}, "tournament": {"name": "Playoffs"}},
	{"id": 11, "status": "running", "begin_at": "2026-10-14T12:00:00Z", "number_of_games": 1,
	 "opponents": [{"opponent": {"id": 3, "name": "G2"}}, {"opponent": {"id": 4, "name": "MOUZ"}}],
	 "results": [{"team_id": 4, "score": 1}, {"team_id": 3, "score": 0}],
	 "league": {"name": ""}, "serie": {"full_name": ""}, "tournament": {"name": "Group A"}},
	{"id": 12, "status": "not_started", "begin_at": null, "opponents": []}
]`

func TestPandaScoreUpcoming(t *testing.T) {
	var path, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path + "?" + r.URL.RawQuery
		auth = r.Header.Get("Authorization")
		fmt.Fprint(w, pandaPayload)
	}))
	defer srv.Close()

	source, err := NewPandaScore(NewAPIClient(time.Second), srv.URL, "secret", "csgo", PandaUpcoming, time.UTC)
	if err != nil {
		t.Fatalf("NewPandaScore: %v", err)
	}

	outcome := source.Fetch(context.Background())
	if outcome.Status != matches.StatusOK {
		t.Fatalf("status = %v, err = %v", outcome.Status, outcome.Err)
	}
	if path != "/csgo/matches/upcoming?per_page=10&sort=begin_at" {
		t.Fatalf("path = %q", path)
	}
	if auth != "Bearer secret" {
		t.Fatalf("authorization = %q", auth)
	}

	want := []matches.Match{
		{Team1: "NAVI", Team2: "FaZe", Event: "ESL Pro League Season 22", Time: "14.10 15:00", Stars: 1, Format: "BO3"},
		{Team1: "G2", Team2: "MOUZ", Event: "Group A", Time: matches.Live, Score: "0:1", Stars: 1, Format: "BO1"},
		{Team1: matches.TBD, Team2: matches.TBD, Time: matches.TBD, Stars: 1, Format: "BO3"},
	}
	if !reflect.DeepEqual(outcome.Matches, want) {
		t.Fatalf("matches = %#v\nwant %#v", outcome.Matches, want)
	}
}

func TestPandaScoreUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	source, err := NewPandaScore(NewAPIClient(time.Second), srv.URL, "bad", "dota2", PandaRunning, nil)
	if err != nil {
		t.Fatalf("NewPandaScore: %v", err)
	}

	outcome := source.Fetch(context.Background())
	if outcome.Status != matches.StatusFailed {
		t.Fatalf("status = %v, want failed", outcome.Status)
	}
	statusErr, ok := outcome.Err.(*StatusError)
	if !ok || statusErr.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v", outcome.Err)
	}
}

func TestPandaScoreRequiresToken(t *testing.T) {
	if _, err := NewPandaScore(NewAPIClient(time.Second), "", " ", "csgo", "", nil); err != ErrMissingToken {
		t.Fatalf("err = %v, want ErrMissingToken", err)
	}
}
