package directory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponder(zone string, x, y float64) *models.Responder {
	return &models.Responder{
		ID:        uuid.New(),
		Name:      "Тестовый респондент",
		Phone:     "+70000000000",
		Zone:      zone,
		X:         x,
		Y:         y,
		Available: true,
	}
}

func TestAdd_NormalizesZoneAndDeduplicates(t *testing.T) {
	// Подготовка
	dir := New()
	responder := newResponder("North", 50, 80)

	// Действие
	require.NoError(t, dir.Add(responder))
	require.NoError(t, dir.Add(responder)) // повторное добавление того же id — no-op

	// Проверки
	inZone := dir.InZone(models.ZoneNorth)
	require.Len(t, inZone, 1)
	assert.Equal(t, responder.ID, inZone[0].ID)
	assert.Equal(t, models.ZoneNorth, inZone[0].Zone)
}

func TestAdd_RejectsUnrecognizedZone(t *testing.T) {
	dir := New()

	err := dir.Add(newResponder("center", 0, 0))
	assert.ErrorIs(t, err, ErrInvalidResponder)

	err = dir.Add(newResponder("", 0, 0))
	assert.ErrorIs(t, err, ErrInvalidResponder)
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	// Подготовка
	dir := New()
	responder := newResponder(models.ZoneEast, 80, 50)
	require.NoError(t, dir.Add(responder))

	// Действие
	dir.Remove(responder.ID)
	dir.Remove(responder.ID) // повторное удаление — no-op
	dir.Remove(uuid.New())   // отсутствующий id — no-op

	// Проверки
	assert.Empty(t, dir.InZone(models.ZoneEast))
}

func TestInZone_ReturnsCopies(t *testing.T) {
	// Подготовка
	dir := New()
	responder := newResponder(models.ZoneWest, 20, 50)
	require.NoError(t, dir.Add(responder))

	// Действие: мутация копии не должна трогать индекс
	inZone := dir.InZone(models.ZoneWest)
	require.Len(t, inZone, 1)
	inZone[0].Available = false

	// Проверки
	snapshot := dir.AvailabilitySnapshot()
	assert.Equal(t, 1, snapshot[models.ZoneWest].Available)
}

func TestInZone_UnknownZoneIsEmpty(t *testing.T) {
	dir := New()
	assert.Empty(t, dir.InZone("center"))
	assert.Empty(t, dir.InZone(""))
}

func TestPickRandomAvailable_SkipsBusy(t *testing.T) {
	// Подготовка
	dir := New()
	busy := newResponder(models.ZoneNorth, 50, 80)
	free := newResponder(models.ZoneNorth, 52, 78)
	require.NoError(t, dir.Add(busy))
	require.NoError(t, dir.Add(free))
	dir.SetAvailable(busy.ID, false)

	// Действие: единственный свободный выбирается всегда
	for i := 0; i < 20; i++ {
		picked := dir.PickRandomAvailable(models.ZoneNorth)
		require.NotNil(t, picked)
		assert.Equal(t, free.ID, picked.ID)
	}
}

func TestPickRandomAvailable_ExhaustedZone(t *testing.T) {
	// Подготовка
	dir := New()
	busy := newResponder(models.ZoneSouth, 50, 20)
	require.NoError(t, dir.Add(busy))
	dir.SetAvailable(busy.ID, false)

	// Проверки
	assert.Nil(t, dir.PickRandomAvailable(models.ZoneSouth))
	assert.Nil(t, dir.PickRandomAvailable("center"))
}

func TestPickNearestAvailable_ChoosesSmallestDistance(t *testing.T) {
	// Подготовка: дистанции до точки (50, 80) — 1.0 и 3.0
	dir := New()
	far := newResponder(models.ZoneNorth, 50, 83)
	near := newResponder(models.ZoneNorth, 50, 81)
	require.NoError(t, dir.Add(far))
	require.NoError(t, dir.Add(near))

	// Действие
	picked := dir.PickNearestAvailable(50, 80, models.ZoneNorth)

	// Проверки
	require.NotNil(t, picked)
	assert.Equal(t, near.ID, picked.ID)
}

func TestPickNearestAvailable_TieBreaksByBucketOrder(t *testing.T) {
	// Подготовка: равные дистанции до (50, 80)
	dir := New()
	first := newResponder(models.ZoneNorth, 48, 80)
	second := newResponder(models.ZoneNorth, 52, 80)
	require.NoError(t, dir.Add(first))
	require.NoError(t, dir.Add(second))

	// Действие
	picked := dir.PickNearestAvailable(50, 80, models.ZoneNorth)

	// Проверки
	require.NotNil(t, picked)
	assert.Equal(t, first.ID, picked.ID)
}

func TestPick_ExcludesResponder(t *testing.T) {
	// Подготовка
	dir := New()
	excluded := newResponder(models.ZoneEast, 80, 50)
	other := newResponder(models.ZoneEast, 81, 51)
	require.NoError(t, dir.Add(excluded))
	require.NoError(t, dir.Add(other))

	// Действие
	for i := 0; i < 20; i++ {
		picked := dir.Pick(StrategyRandom, 0, 0, models.ZoneEast, &excluded.ID)
		require.NotNil(t, picked)
		assert.Equal(t, other.ID, picked.ID)
	}

	// Единственный кандидат исключен — зона исчерпана
	dir.Remove(other.ID)
	assert.Nil(t, dir.Pick(StrategyRandom, 0, 0, models.ZoneEast, &excluded.ID))
}

func TestSetAvailable_ReturnsPreviousValue(t *testing.T) {
	// Подготовка
	dir := New()
	responder := newResponder(models.ZoneWest, 20, 50)
	require.NoError(t, dir.Add(responder))

	// Действие и проверки
	prev, ok := dir.SetAvailable(responder.ID, false)
	require.True(t, ok)
	assert.True(t, prev)

	// Повторное занятие сообщает, что респондент уже был занят
	prev, ok = dir.SetAvailable(responder.ID, false)
	require.True(t, ok)
	assert.False(t, prev)

	prev, ok = dir.SetAvailable(responder.ID, true)
	require.True(t, ok)
	assert.False(t, prev)

	// Неизвестный id
	_, ok = dir.SetAvailable(uuid.New(), false)
	assert.False(t, ok)
}

func TestAvailabilitySnapshot_CountsPerZone(t *testing.T) {
	// Подготовка
	dir := New()
	free := newResponder(models.ZoneNorth, 50, 80)
	busy := newResponder(models.ZoneNorth, 52, 78)
	south := newResponder(models.ZoneSouth, 50, 20)
	require.NoError(t, dir.Add(free))
	require.NoError(t, dir.Add(busy))
	require.NoError(t, dir.Add(south))
	dir.SetAvailable(busy.ID, false)

	// Действие
	snapshot := dir.AvailabilitySnapshot()

	// Проверки: все четыре зоны присутствуют
	require.Len(t, snapshot, len(models.Zones()))
	assert.Equal(t, ZoneAvailability{Available: 1, Total: 2}, snapshot[models.ZoneNorth])
	assert.Equal(t, ZoneAvailability{Available: 1, Total: 1}, snapshot[models.ZoneSouth])
	assert.Equal(t, ZoneAvailability{}, snapshot[models.ZoneEast])
}

func TestParseStrategy_DefaultsToRandom(t *testing.T) {
	assert.Equal(t, StrategyNearest, ParseStrategy("nearest"))
	assert.Equal(t, StrategyRandom, ParseStrategy("random"))
	assert.Equal(t, StrategyRandom, ParseStrategy(""))
	assert.Equal(t, StrategyRandom, ParseStrategy("unknown"))
}

func TestDistance_Euclidean(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, 0.0, Distance(10, 10, 10, 10), 1e-9)
}
