package matches

import "strings"

const (
	TBD           = "TBD"
	Live          = "LIVE"
	DefaultFormat = "BO3"
	DefaultStars  = 1
	// Limit - максимум записей, которые отдает одна стратегия
	Limit = 10
)

// Match представляет один запланированный или идущий матч
type Match struct {
	Team1  string // Первая команда, TBD если неизвестна
	Team2  string // Вторая команда, TBD если неизвестна
	Event  string // Турнир, может быть пустым
	Time   string // Расписание, LIVE или отформатированное время
	Stars  int    // Важность матча 1-3
	Format string // Формат серии, например BO3
	Score  string // Счет в формате "X:Y", только для live
}

// IsLive сообщает, идет ли матч прямо сейчас
func (m Match) IsLive() bool {
	return m.Time == Live
}

// FilterByKeywords оставляет матчи, в названии турнира которых есть одно из ключевых слов
func FilterByKeywords(list []Match, keywords ...string) []Match {
	var filtered []Match
	for _, m := range list {
		event := strings.ToLower(m.Event)
		for _, keyword := range keywords {
			if strings.Contains(event, strings.ToLower(keyword)) {
				filtered = append(filtered, m)
				break
			}
		}
	}
	return filtered
}

func truncate(list []Match, limit int) []Match {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
