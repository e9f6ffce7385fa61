package models

import "strings"

// Зоны — четыре фиксированных региона для сопоставления заявителей и респондентов
const (
	ZoneNorth = "north"
	ZoneSouth = "south"
	ZoneEast  = "east"
	ZoneWest  = "west"
)

// Zones возвращает список всех распознаваемых зон
func Zones() []string {
	return []string{ZoneNorth, ZoneSouth, ZoneEast, ZoneWest}
}

// NormalizeZone приводит имя зоны к нижнему регистру и проверяет, что зона распознана
func NormalizeZone(zone string) (string, bool) {
	z := strings.ToLower(strings.TrimSpace(zone))
	switch z {
	case ZoneNorth, ZoneSouth, ZoneEast, ZoneWest:
		return z, true
	}
	return z, false
}
