package geo

import (
	"math"
	"math/rand/v2"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// Границы плоскости, на которой размещаются все участники
const (
	MinCoord = 0.0
	MaxCoord = 100.0
)

// Разброс вокруг якорной точки зоны
const zoneSpread = 20.0

// Якорные точки зон внутри общей плоскости
var zoneAnchors = map[string]struct{ X, Y float64 }{
	models.ZoneNorth: {X: 50, Y: 80},
	models.ZoneSouth: {X: 50, Y: 20},
	models.ZoneEast:  {X: 80, Y: 50},
	models.ZoneWest:  {X: 20, Y: 50},
}

// Coordinate возвращает псевдослучайную координату внутри под-прямоугольника
// вокруг якоря распознанной зоны, обрезанную по границам плоскости.
// Для нераспознанной зоны возвращается равномерная точка внутри всей плоскости.
// Тотальная функция: ошибок нет.
func Coordinate(zone string) (float64, float64) {
	z, ok := models.NormalizeZone(zone)
	if !ok {
		return MinCoord + rand.Float64()*(MaxCoord-MinCoord),
			MinCoord + rand.Float64()*(MaxCoord-MinCoord)
	}

	anchor := zoneAnchors[z]
	x := anchor.X + (rand.Float64()*2-1)*zoneSpread
	y := anchor.Y + (rand.Float64()*2-1)*zoneSpread
	return clamp(x), clamp(y)
}

func clamp(v float64) float64 {
	return math.Min(MaxCoord, math.Max(MinCoord, v))
}
