package directory

import (
	"errors"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// ErrInvalidResponder возвращается при попытке добавить респондента с пустой или нераспознанной зоной
var ErrInvalidResponder = errors.New("directory: responder zone is empty or unrecognized")

// Strategy - стратегия выбора респондента при назначении
type Strategy string

const (
	StrategyRandom  Strategy = "random"
	StrategyNearest Strategy = "nearest"
)

// ParseStrategy возвращает стратегию по имени, по умолчанию - random
func ParseStrategy(name string) Strategy {
	if Strategy(name) == StrategyNearest {
		return StrategyNearest
	}
	return StrategyRandom
}

// ZoneAvailability - срез доступности респондентов в одной зоне
type ZoneAvailability struct {
	Available int `json:"available"`
	Total     int `json:"total"`
}

// Directory - реестр респондентов, секционированный по зонам.
// Владеет индексом зон, но не семантикой доступности: флаг Available
// выставляет диспетчер через SetAvailable.
type Directory struct {
	mu    sync.RWMutex
	zones map[string][]*models.Responder
}

func New() *Directory {
	zones := make(map[string][]*models.Responder, len(models.Zones()))
	for _, z := range models.Zones() {
		zones[z] = []*models.Responder{}
	}
	return &Directory{zones: zones}
}

// Add вставляет респондента в бакет его зоны.
// Зона нормализуется без учета регистра; повторное добавление того же id - no-op.
func (d *Directory) Add(r *models.Responder) error {
	zone, ok := models.NormalizeZone(r.Zone)
	if !ok {
		return ErrInvalidResponder
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.zones[zone] {
		if existing.ID == r.ID {
			return nil
		}
	}

	stored := *r
	stored.Zone = zone
	d.zones[zone] = append(d.zones[zone], &stored)
	return nil
}

// Remove удаляет респондента из всех бакетов; отсутствие - не ошибка
func (d *Directory) Remove(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for zone, bucket := range d.zones {
		for i, r := range bucket {
			if r.ID == id {
				d.zones[zone] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
	}
}

// InZone возвращает копии респондентов зоны.
// Для нераспознанной или пустой зоны возвращается пустой слайс, никогда не ошибка.
func (d *Directory) InZone(zone string) []*models.Responder {
	z, ok := models.NormalizeZone(zone)
	if !ok {
		return []*models.Responder{}
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]*models.Responder, 0, len(d.zones[z]))
	for _, r := range d.zones[z] {
		copied := *r
		result = append(result, &copied)
	}
	return result
}

// PickRandomAvailable выбирает равновероятно среди свободных респондентов зоны (стратегия A)
func (d *Directory) PickRandomAvailable(zone string) *models.Responder {
	return d.Pick(StrategyRandom, 0, 0, zone, nil)
}

// PickNearestAvailable выбирает свободного респондента с наименьшей евклидовой
// дистанцией до точки (x, y); ничья разрешается порядком бакета (стратегия B)
func (d *Directory) PickNearestAvailable(x, y float64, zone string) *models.Responder {
	return d.Pick(StrategyNearest, x, y, zone, nil)
}

// Pick выбирает свободного респондента зоны по стратегии, исключая excludeID.
// Возвращает копию или nil, если свободных нет.
func (d *Directory) Pick(strategy Strategy, x, y float64, zone string, excludeID *uuid.UUID) *models.Responder {
	z, ok := models.NormalizeZone(zone)
	if !ok {
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	available := make([]*models.Responder, 0, len(d.zones[z]))
	for _, r := range d.zones[z] {
		if !r.Available {
			continue
		}
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		available = append(available, r)
	}
	if len(available) == 0 {
		return nil
	}

	var chosen *models.Responder
	switch strategy {
	case StrategyNearest:
		chosen = available[0]
		best := Distance(x, y, chosen.X, chosen.Y)
		for _, r := range available[1:] {
			if dist := Distance(x, y, r.X, r.Y); dist < best {
				best = dist
				chosen = r
			}
		}
	default:
		chosen = available[rand.IntN(len(available))]
	}

	copied := *chosen
	return &copied
}

// SetAvailable выставляет флаг доступности респондента.
// Возвращает прежнее значение флага и признак того, что респондент найден.
func (d *Directory) SetAvailable(id uuid.UUID, available bool) (prev, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, bucket := range d.zones {
		for _, r := range bucket {
			if r.ID == id {
				prev = r.Available
				r.Available = available
				return prev, true
			}
		}
	}
	return false, false
}

// AvailabilitySnapshot возвращает счетчики свободных и всех респондентов по зонам
func (d *Directory) AvailabilitySnapshot() map[string]ZoneAvailability {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := make(map[string]ZoneAvailability, len(d.zones))
	for zone, bucket := range d.zones {
		za := ZoneAvailability{Total: len(bucket)}
		for _, r := range bucket {
			if r.Available {
				za.Available++
			}
		}
		snapshot[zone] = za
	}
	return snapshot
}

// Distance - евклидова дистанция на плоскости (плоское приближение, не геодезия)
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
