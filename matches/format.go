package matches

import (
	"fmt"
	"html"
	"strings"
)

const starGlyph = "⭐"

// Formatter рендерит список матчей в HTML-сообщение Telegram
type Formatter struct {
	Title     string // Заголовок, уже в HTML
	Footer    string // Строка с источником данных
	EmptyText string // Текст, если матчей нет
}

func (f Formatter) Format(list []Match) string {
	var b strings.Builder

	b.WriteString(f.Title)
	b.WriteString("\n\n")

	if len(list) == 0 {
		b.WriteString(f.EmptyText)
		b.WriteString("\n\n")
	}

	for i, m := range list {
		writeBlock(&b, i+1, m)
	}

	b.WriteString(f.Footer)
	return b.String()
}

func writeBlock(b *strings.Builder, n int, m Match) {
	if m.Team2 == "" {
		fmt.Fprintf(b, "%d. <b>%s</b>\n", n, html.EscapeString(m.Team1))
	} else {
		fmt.Fprintf(b, "%d. <b>%s</b> vs <b>%s</b>\n", n, html.EscapeString(m.Team1), html.EscapeString(m.Team2))
	}

	if m.Event != "" {
		fmt.Fprintf(b, "🏆 %s\n", html.EscapeString(m.Event))
	}

	switch {
	case m.IsLive() && m.Score != "":
		fmt.Fprintf(b, "🔴 LIVE %s\n", html.EscapeString(m.Score))
	case m.IsLive():
		b.WriteString("🔴 LIVE\n")
	case m.Time != "":
		fmt.Fprintf(b, "⏰ %s\n", html.EscapeString(m.Time))
	}

	var meta []string
	if m.Stars > 0 {
		meta = append(meta, strings.Repeat(starGlyph, m.Stars))
	}
	if m.Format != "" {
		meta = append(meta, "📋 "+html.EscapeString(m.Format))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, " | "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
}
