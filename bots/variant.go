package bots

import "esportsbot/handlers"

// Variant - один из ботов: имя для логов и настройки обработчиков
type Variant struct {
	Name     string
	Settings handlers.Settings
}
