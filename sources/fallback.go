package sources

import "esportsbot/matches"

// HLTVFallback - статичный список, который показывается, если все источники молчат
func HLTVFallback() []matches.Match {
	return []matches.Match{
		{Team1: "NAVI", Team2: "FaZe", Event: "IEM Katowice 2025", Time: "Сегодня 18:00", Stars: 3, Format: "BO3"},
		{Team1: "Vitality", Team2: "G2", Event: "BLAST Premier World Final", Time: "Сегодня 21:00", Stars: 3, Format: "BO3"},
		{Team1: "Spirit", Team2: "MOUZ", Event: "ESL Pro League Season 21", Time: "Завтра 15:00", Stars: 2, Format: "BO3"},
		{Team1: "Astralis", Team2: "Heroic", Event: "ESL Pro League Season 21", Time: "Завтра 18:30", Stars: 2, Format: "BO3"},
		{Team1: "Team Liquid", Team2: "Complexity", Event: "PGL Major Copenhagen", Time: "Завтра 21:00", Stars: 2, Format: "BO1"},
		{Team1: "Virtus.pro", Team2: "Cloud9", Event: "IEM Cologne 2025", Time: "Послезавтра 16:00", Stars: 1, Format: "BO3"},
		{Team1: "FURIA", Team2: "The MongolZ", Event: "BLAST Open Lisbon", Time: "Послезавтра 19:00", Stars: 1, Format: "BO3"},
	}
}

// DotaSentinel - единственная запись, когда live матчей Dota 2 не найдено
func DotaSentinel() []matches.Match {
	return []matches.Match{
		{Team1: "Нет live матчей", Time: "Загляните позже"},
	}
}
