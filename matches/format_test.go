package matches

import (
	"fmt"
	"strings"
	"testing"
)

var testFormatter = Formatter{
	Title:     "🎮 <b>Матчи</b>",
	Footer:    "📊 Данные: test",
	EmptyText: "Матчи не найдены",
}

func TestFormatOneBlockPerRecordInOrder(t *testing.T) {
	list := []Match{
		{Team1: "NAVI", Team2: "FaZe", Event: "IEM", Time: "18:00", Stars: 3, Format: "BO3"},
		{Team1: "Spirit", Team2: "G2", Event: "BLAST", Time: Live, Score: "1:0", Stars: 1, Format: "BO1"},
		{Team1: "MOUZ", Team2: "Vitality", Time: "Завтра", Stars: 2, Format: "BO5"},
	}

	out := testFormatter.Format(list)

	blocks := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, testFormatter.Title+"\n\n"), testFormatter.Footer), "\n\n")
	var nonEmpty []string
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			nonEmpty = append(nonEmpty, block)
		}
	}
	if len(nonEmpty) != len(list) {
		t.Fatalf("blocks = %d, want %d\n%s", len(nonEmpty), len(list), out)
	}

	for i, block := range nonEmpty {
		prefix := fmt.Sprintf("%d. <b>%s</b> vs <b>%s</b>", i+1, list[i].Team1, list[i].Team2)
		if !strings.HasPrefix(block, prefix) {
			t.Fatalf("block %d = %q, want prefix %q", i, block, prefix)
		}
		if got := strings.Count(block, starGlyph); got != list[i].Stars {
			t.Fatalf("block %d stars = %d, want %d", i, got, list[i].Stars)
		}
	}

	if !strings.HasSuffix(out, testFormatter.Footer) {
		t.Fatalf("missing footer: %q", out)
	}
}

func TestFormatLiveScore(t *testing.T) {
	out := testFormatter.Format([]Match{{Team1: "A", Team2: "B", Time: Live, Score: "2:1", Stars: 1}})
	if !strings.Contains(out, "🔴 LIVE 2:1") {
		t.Fatalf("expected live score, got %q", out)
	}
	if strings.Contains(out, "⏰") {
		t.Fatalf("live match must not show schedule: %q", out)
	}
}

func TestFormatEmpty(t *testing.T) {
	out := testFormatter.Format(nil)
	if !strings.Contains(out, "Матчи не найдены") {
		t.Fatalf("expected empty text, got %q", out)
	}
}

func TestFormatEscapesAndKeepsLongNames(t *testing.T) {
	long := strings.Repeat("Very Long Team Name ", 20)
	out := testFormatter.Format([]Match{{Team1: "<Team & Co>", Team2: long, Stars: 0}})
	if !strings.Contains(out, "&lt;Team &amp; Co&gt;") {
		t.Fatalf("name not escaped: %q", out)
	}
	if !strings.Contains(out, long) {
		t.Fatal("long name was truncated")
	}
	if strings.Contains(out, starGlyph) {
		t.Fatal("zero stars must render no glyph")
	}
}

func TestFormatSentinelWithoutSecondTeam(t *testing.T) {
	out := testFormatter.Format([]Match{{Team1: "Нет live матчей"}})
	if !strings.Contains(out, "1. <b>Нет live матчей</b>\n") {
		t.Fatalf("unexpected sentinel rendering: %q", out)
	}
	if strings.Contains(out, " vs ") {
		t.Fatalf("sentinel must not render versus: %q", out)
	}
}
