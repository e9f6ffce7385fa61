package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/directory"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	notify_mocks "github.com/shenikar/emergency_dispatch_system/internal/notify/mocks"
	"github.com/shenikar/emergency_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherMocks struct {
	alerts     *mocks.MockAlertRepository
	responders *mocks.MockResponderRepository
	users      *mocks.MockUserRepository
	dispatches *mocks.MockDispatchRepository
	publisher  *notify_mocks.MockPublisher
}

// newTestDispatchService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestDispatchService(t *testing.T) (*dispatchService, dispatcherMocks, *directory.Directory) {
	ctrl := gomock.NewController(t)
	m := dispatcherMocks{
		alerts:     mocks.NewMockAlertRepository(ctrl),
		responders: mocks.NewMockResponderRepository(ctrl),
		users:      mocks.NewMockUserRepository(ctrl),
		dispatches: mocks.NewMockDispatchRepository(ctrl),
		publisher:  notify_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		AssignStrategy: "random",
	}

	dir := directory.New()
	svc := NewDispatchService(m.alerts, m.responders, m.users, m.dispatches, dir, m.publisher, logger, cfg)
	return svc.(*dispatchService), m, dir
}

func newTestResponder(zone string, x, y float64) *models.Responder {
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

func expectClaim(m dispatcherMocks, responderID uuid.UUID) {
	m.responders.EXPECT().
		SetAvailability(gomock.Any(), responderID, false).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(gomock.Any(), gomock.Any(), models.StatusAssigned, gomock.Any()).
		Return(nil).
		Times(1)
	m.dispatches.EXPECT().
		RecordDispatch(gomock.Any(), gomock.Any(), responderID, gomock.Any()).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		AppendStatusHistory(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	m.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
}

func TestSubmit_AssignsAvailableResponder(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	responder := newTestResponder(models.ZoneNorth, 50, 80)
	require.NoError(t, dir.Add(responder))

	requesterID := uuid.New()
	requester := &models.User{
		ID:   requesterID,
		Name: "Тестовый заявитель",
		Role: models.RoleRequester,
		Zone: models.ZoneNorth,
		X:    51,
		Y:    79,
	}
	alert := &models.Alert{RequesterID: requesterID}

	// Ожидания
	m.users.EXPECT().
		GetByID(ctx, requesterID).
		Return(requester, nil).
		Times(1)
	m.alerts.EXPECT().
		Create(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		}).
		Times(1)
	expectClaim(m, responder.ID)

	// Действие
	err := svc.Submit(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, alert.Status)
	require.NotNil(t, alert.ResponderID)
	assert.Equal(t, responder.ID, *alert.ResponderID)
	assert.Equal(t, models.ZoneNorth, alert.Zone)
	assert.Empty(t, svc.queue, "назначенная заявка не должна оставаться в очереди")

	// Выбранный респондент стал занят
	snapshot := dir.AvailabilitySnapshot()
	assert.Equal(t, 0, snapshot[models.ZoneNorth].Available)
	assert.Equal(t, 1, snapshot[models.ZoneNorth].Total)
}

func TestSubmit_EmptyZone_MarksWaitingAndEscalates(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()

	requesterID := uuid.New()
	requester := &models.User{
		ID:   requesterID,
		Zone: models.ZoneSouth,
		X:    50,
		Y:    20,
	}
	alert := &models.Alert{RequesterID: requesterID}

	// Ожидания
	m.users.EXPECT().
		GetByID(ctx, requesterID).
		Return(requester, nil).
		Times(1)
	m.alerts.EXPECT().
		Create(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		}).
		Times(1)
	// Каталог пуст — следом идет durable-скан хранилища, тоже пустой
	m.responders.EXPECT().
		FindAvailableInZone(ctx, models.ZoneSouth, gomock.Nil()).
		Return(nil, nil).
		Times(1)
	m.dispatches.EXPECT().
		RecordEscalation(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.EscalationEntry) error {
			assert.Equal(t, models.ZoneSouth, entry.Zone)
			assert.NotEmpty(t, entry.Reason)
			return nil
		}).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, gomock.Any(), models.StatusWaiting, gomock.Nil()).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		AppendStatusHistory(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := svc.Submit(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, alert.Status)
	assert.Nil(t, alert.ResponderID)
	assert.Len(t, svc.queue, 1, "ожидающая заявка остается в очереди")
}

func TestSubmit_RequesterNotFound(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()
	requesterID := uuid.New()

	// Ожидания
	m.users.EXPECT().
		GetByID(ctx, requesterID).
		Return(nil, fmt.Errorf("no rows")).
		Times(1)

	// Действие
	err := svc.Submit(ctx, &models.Alert{RequesterID: requesterID})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, svc.queue)
}

func TestSubmit_PersistFailure_NotEnqueued(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()

	requesterID := uuid.New()
	requester := &models.User{ID: requesterID, Zone: models.ZoneWest}

	// Ожидания
	m.users.EXPECT().
		GetByID(ctx, requesterID).
		Return(requester, nil).
		Times(1)
	m.alerts.EXPECT().
		Create(ctx, gomock.Any()).
		Return(fmt.Errorf("connection reset")).
		Times(1)

	// Действие
	err := svc.Submit(ctx, &models.Alert{RequesterID: requesterID})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, svc.queue, "несохраненная заявка не попадает в очередь")
}

func TestSubmit_AssignPersistFailure_RollsBackAvailability(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	responder := newTestResponder(models.ZoneEast, 80, 50)
	require.NoError(t, dir.Add(responder))

	requesterID := uuid.New()
	requester := &models.User{ID: requesterID, Zone: models.ZoneEast, X: 80, Y: 50}
	alert := &models.Alert{RequesterID: requesterID}

	// Ожидания
	m.users.EXPECT().
		GetByID(ctx, requesterID).
		Return(requester, nil).
		Times(1)
	m.alerts.EXPECT().
		Create(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		}).
		Times(1)
	m.responders.EXPECT().
		SetAvailability(ctx, responder.ID, false).
		Return(nil).
		Times(1)
	// Сбой фиксации назначения — занятость респондента откатывается
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, gomock.Any(), models.StatusAssigned, gomock.Any()).
		Return(fmt.Errorf("connection reset")).
		Times(1)
	m.responders.EXPECT().
		SetAvailability(ctx, responder.ID, true).
		Return(nil).
		Times(1)

	// Действие
	err := svc.Submit(ctx, alert)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, models.StatusActive, alert.Status)
	assert.Nil(t, alert.ResponderID)
	assert.Len(t, svc.queue, 1, "заявка остается в очереди до следующей попытки")

	snapshot := dir.AvailabilitySnapshot()
	assert.Equal(t, 1, snapshot[models.ZoneEast].Available, "респондент снова свободен после отката")
}

func TestProcessNext_Idempotent_HeadStaysOnFailure(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()

	alert := &models.Alert{
		ID:     uuid.New(),
		Zone:   models.ZoneNorth,
		Status: models.StatusActive,
	}
	svc.queue = []*models.Alert{alert}

	// Ожидания: зона исчерпана в обоих вызовах, эскалация пишется каждый раз,
	// но статус и история — только при фактическом переходе ACTIVE -> WAITING
	m.responders.EXPECT().
		FindAvailableInZone(ctx, models.ZoneNorth, gomock.Nil()).
		Return(nil, nil).
		Times(2)
	m.dispatches.EXPECT().
		RecordEscalation(ctx, gomock.Any()).
		Return(nil).
		Times(2)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, alert.ID, models.StatusWaiting, gomock.Nil()).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		AppendStatusHistory(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	require.NoError(t, svc.ProcessNext(ctx))
	require.NoError(t, svc.ProcessNext(ctx))

	// Проверки
	assert.Equal(t, models.StatusWaiting, alert.Status)
	require.Len(t, svc.queue, 1)
	assert.Equal(t, alert.ID, svc.queue[0].ID, "голова очереди не снимается при неудаче")
}

func TestProcessNext_EmptyQueue(t *testing.T) {
	svc, _, _ := newTestDispatchService(t)
	require.NoError(t, svc.ProcessNext(context.Background()))
}

func TestProcessAllPending_RotatesWaitingToTail(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	// В south есть свободный респондент, north исчерпан
	responder := newTestResponder(models.ZoneSouth, 50, 20)
	require.NoError(t, dir.Add(responder))

	blocked := &models.Alert{ID: uuid.New(), Zone: models.ZoneNorth, Status: models.StatusActive}
	assignable := &models.Alert{ID: uuid.New(), Zone: models.ZoneSouth, Status: models.StatusActive}
	svc.queue = []*models.Alert{blocked, assignable}

	// Ожидания
	m.responders.EXPECT().
		FindAvailableInZone(ctx, models.ZoneNorth, gomock.Nil()).
		Return(nil, nil).
		Times(1)
	m.dispatches.EXPECT().
		RecordEscalation(ctx, gomock.Any()).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, blocked.ID, models.StatusWaiting, gomock.Nil()).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		AppendStatusHistory(ctx, gomock.Any()).
		Return(nil).
		Times(2) // WAITING для blocked и ASSIGNED для assignable
	m.responders.EXPECT().
		SetAvailability(ctx, responder.ID, false).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, assignable.ID, models.StatusAssigned, gomock.Any()).
		Return(nil).
		Times(1)
	m.dispatches.EXPECT().
		RecordDispatch(ctx, assignable.ID, responder.ID, gomock.Any()).
		Return(nil).
		Times(1)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	require.NoError(t, svc.ProcessAllPending(ctx))

	// Проверки
	assert.Equal(t, models.StatusAssigned, assignable.Status)
	assert.Equal(t, models.StatusWaiting, blocked.Status)
	require.Len(t, svc.queue, 1, "назначенная заявка покидает очередь, ожидающая остается")
	assert.Equal(t, blocked.ID, svc.queue[0].ID)
}

func TestCompleteAlert_ReleasesResponderAndRetriesWaiting(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	responder := newTestResponder(models.ZoneWest, 20, 50)
	require.NoError(t, dir.Add(responder))
	prev, ok := dir.SetAvailable(responder.ID, false) // занят завершаемой заявкой
	require.True(t, ok)
	require.True(t, prev)

	responderID := responder.ID
	resolved := &models.Alert{
		ID:          uuid.New(),
		Zone:        models.ZoneWest,
		Status:      models.StatusAssigned,
		ResponderID: &responderID,
	}
	waiting := &models.Alert{
		ID:     uuid.New(),
		Zone:   models.ZoneWest,
		Status: models.StatusWaiting,
	}
	svc.queue = []*models.Alert{waiting}

	// Ожидания: завершение
	m.alerts.EXPECT().
		GetByID(ctx, resolved.ID).
		Return(resolved, nil).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, resolved.ID, models.StatusResolved, &responderID).
		Return(nil).
		Times(1)
	m.responders.EXPECT().
		SetAvailability(ctx, responderID, true).
		Return(nil).
		Times(1)
	m.dispatches.EXPECT().
		CloseDispatch(ctx, resolved.ID, responderID).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		AppendStatusHistory(ctx, gomock.Any()).
		Return(nil).
		Times(2) // RESOLVED для завершенной и ASSIGNED для ожидавшей

	// Ожидания: освобожденный респондент достается ожидающей заявке
	m.responders.EXPECT().
		SetAvailability(ctx, responderID, false).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, waiting.ID, models.StatusAssigned, gomock.Any()).
		Return(nil).
		Times(1)
	m.dispatches.EXPECT().
		RecordDispatch(ctx, waiting.ID, responderID, gomock.Any()).
		Return(nil).
		Times(1)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := svc.CompleteAlert(ctx, resolved.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, waiting.Status)
	require.NotNil(t, waiting.ResponderID)
	assert.Equal(t, responderID, *waiting.ResponderID)
	assert.Empty(t, svc.queue)
}

func TestCompleteAlert_NotFound(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	m.alerts.EXPECT().
		GetByID(ctx, alertID).
		Return(nil, fmt.Errorf("no rows")).
		Times(1)

	// Действие
	err := svc.CompleteAlert(ctx, alertID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteAlert_WithoutResponder_ReportsAndReturnsNil(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()

	alert := &models.Alert{
		ID:     uuid.New(),
		Zone:   models.ZoneNorth,
		Status: models.StatusWaiting,
	}

	// Ожидания: никаких переходов — только чтение
	m.alerts.EXPECT().
		GetByID(ctx, alert.ID).
		Return(alert, nil).
		Times(1)

	// Действие
	err := svc.CompleteAlert(ctx, alert.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, alert.Status)
}

func TestCompleteAlert_AlreadyResolved_IsNoOp(t *testing.T) {
	// Подготовка: респондент завершенной заявки уже занят другой заявкой
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	responder := newTestResponder(models.ZoneNorth, 50, 80)
	require.NoError(t, dir.Add(responder))
	dir.SetAvailable(responder.ID, false)

	responderID := responder.ID
	resolved := &models.Alert{
		ID:          uuid.New(),
		Zone:        models.ZoneNorth,
		Status:      models.StatusResolved,
		ResponderID: &responderID,
	}

	// Ожидания: RESOLVED терминален — кроме чтения ничего не происходит
	m.alerts.EXPECT().
		GetByID(ctx, resolved.ID).
		Return(resolved, nil).
		Times(1)

	// Действие
	err := svc.CompleteAlert(ctx, resolved.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, resolved.Status)

	// Занятый другой заявкой респондент не освобожден повторным завершением
	snapshot := dir.AvailabilitySnapshot()
	assert.Equal(t, 0, snapshot[models.ZoneNorth].Available)
}

func TestCompleteAlert_ReleaseFailure_RollsBackResolution(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()

	responderID := uuid.New()
	alert := &models.Alert{
		ID:          uuid.New(),
		Zone:        models.ZoneSouth,
		Status:      models.StatusAssigned,
		ResponderID: &responderID,
	}

	// Ожидания
	m.alerts.EXPECT().
		GetByID(ctx, alert.ID).
		Return(alert, nil).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, alert.ID, models.StatusResolved, &responderID).
		Return(nil).
		Times(1)
	m.responders.EXPECT().
		SetAvailability(ctx, responderID, true).
		Return(fmt.Errorf("connection reset")).
		Times(1)
	// Откат: заявка возвращается в прежний статус
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, alert.ID, models.StatusAssigned, &responderID).
		Return(nil).
		Times(1)

	// Действие
	err := svc.CompleteAlert(ctx, alert.ID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestCheckUnassigned_AssignsWaitingAlerts(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	responder := newTestResponder(models.ZoneNorth, 50, 80)
	require.NoError(t, dir.Add(responder))

	waiting := &models.Alert{ID: uuid.New(), Zone: models.ZoneNorth, Status: models.StatusWaiting}
	active := &models.Alert{ID: uuid.New(), Zone: models.ZoneNorth, Status: models.StatusActive}
	svc.queue = []*models.Alert{waiting, active}

	// Ожидания: единственный респондент достается голове очереди
	expectClaim(m, responder.ID)
	// Второй заявке респондента не хватило: зона исчерпана, переход в WAITING
	m.responders.EXPECT().
		FindAvailableInZone(ctx, models.ZoneNorth, gomock.Nil()).
		Return(nil, nil).
		Times(1)
	m.dispatches.EXPECT().
		RecordEscalation(ctx, gomock.Any()).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, active.ID, models.StatusWaiting, gomock.Nil()).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		AppendStatusHistory(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	require.NoError(t, svc.CheckUnassigned(ctx))

	// Проверки
	assert.Equal(t, models.StatusAssigned, waiting.Status)
	assert.Equal(t, models.StatusWaiting, active.Status)
	require.Len(t, svc.queue, 1)
	assert.Equal(t, active.ID, svc.queue[0].ID, "неназначенная заявка остается в очереди")
}

func TestCheckUnassigned_AssignsRestoredActiveAlert(t *testing.T) {
	// Подготовка: после рестарта в очереди ACTIVE заявка, в зоне свободный респондент
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	responder := newTestResponder(models.ZoneSouth, 50, 20)
	restored := &models.Alert{ID: uuid.New(), Zone: models.ZoneSouth, Status: models.StatusActive}

	// Ожидания: восстановление состояния
	m.responders.EXPECT().
		ListByZone(ctx, models.ZoneSouth).
		Return([]*models.Responder{responder}, nil).
		Times(1)
	m.responders.EXPECT().
		ListByZone(ctx, gomock.Any()).
		Return(nil, nil).
		Times(3)
	m.alerts.EXPECT().
		LoadPending(ctx).
		Return([]*models.Alert{restored}, nil).
		Times(1)

	require.NoError(t, svc.Restore(ctx))
	require.Len(t, svc.queue, 1)
	require.Len(t, dir.InZone(models.ZoneSouth), 1)

	// Ожидания: плановый обход назначает восстановленную ACTIVE заявку
	expectClaim(m, responder.ID)

	// Действие
	require.NoError(t, svc.CheckUnassigned(ctx))

	// Проверки
	assert.Equal(t, models.StatusAssigned, restored.Status)
	require.NotNil(t, restored.ResponderID)
	assert.Equal(t, responder.ID, *restored.ResponderID)
	assert.Empty(t, svc.queue)
}

func TestCheckUnassigned_ZoneStillExhausted_KeepsWaiting(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()

	waiting := &models.Alert{ID: uuid.New(), Zone: models.ZoneEast, Status: models.StatusWaiting}
	svc.queue = []*models.Alert{waiting}

	// Ожидания
	m.responders.EXPECT().
		FindAvailableInZone(ctx, models.ZoneEast, gomock.Nil()).
		Return(nil, nil).
		Times(1)
	m.dispatches.EXPECT().
		RecordEscalation(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	require.NoError(t, svc.CheckUnassigned(ctx))

	// Проверки
	assert.Equal(t, models.StatusWaiting, waiting.Status)
	assert.Len(t, svc.queue, 1)
}

func TestReassign_ExcludesPreviousResponder(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	previous := newTestResponder(models.ZoneNorth, 50, 80)
	replacement := newTestResponder(models.ZoneNorth, 52, 82)
	require.NoError(t, dir.Add(previous))
	require.NoError(t, dir.Add(replacement))
	dir.SetAvailable(previous.ID, false) // занят этой заявкой

	previousID := previous.ID
	alert := &models.Alert{
		ID:          uuid.New(),
		Zone:        models.ZoneNorth,
		Status:      models.StatusAssigned,
		ResponderID: &previousID,
	}

	// Ожидания: освобождение прежнего, закрытие его записи, занятие нового
	m.responders.EXPECT().
		SetAvailability(ctx, previousID, true).
		Return(nil).
		Times(1)
	m.dispatches.EXPECT().
		CloseDispatch(ctx, alert.ID, previousID).
		Return(nil).
		Times(1)
	expectClaim(m, replacement.ID)

	// Действие
	err := svc.Reassign(ctx, alert)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, alert.ResponderID)
	assert.Equal(t, replacement.ID, *alert.ResponderID)
	assert.Equal(t, models.StatusAssigned, alert.Status)
}

func TestReassign_ClaimFailure_KeepsPriorDispatchOpen(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	previous := newTestResponder(models.ZoneNorth, 50, 80)
	replacement := newTestResponder(models.ZoneNorth, 52, 82)
	require.NoError(t, dir.Add(previous))
	require.NoError(t, dir.Add(replacement))
	dir.SetAvailable(previous.ID, false) // занят этой заявкой

	previousID := previous.ID
	alert := &models.Alert{
		ID:          uuid.New(),
		Zone:        models.ZoneNorth,
		Status:      models.StatusAssigned,
		ResponderID: &previousID,
	}

	// Ожидания: освобождение прежнего, сбой фиксации нового, компенсация.
	// CloseDispatch не ожидается вовсе: прежняя запись о назначении
	// закрывается только после успешной фиксации нового.
	m.responders.EXPECT().
		SetAvailability(ctx, previousID, true).
		Return(nil).
		Times(1)
	m.responders.EXPECT().
		SetAvailability(ctx, replacement.ID, false).
		Return(nil).
		Times(1)
	m.alerts.EXPECT().
		UpdateStatusAndResponder(ctx, alert.ID, models.StatusAssigned, gomock.Any()).
		Return(fmt.Errorf("connection reset")).
		Times(1)
	m.responders.EXPECT().
		SetAvailability(ctx, replacement.ID, true).
		Return(nil).
		Times(1)
	m.responders.EXPECT().
		SetAvailability(ctx, previousID, false).
		Return(nil).
		Times(1)

	// Действие
	err := svc.Reassign(ctx, alert)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	require.NotNil(t, alert.ResponderID)
	assert.Equal(t, previousID, *alert.ResponderID, "заявка остается за прежним респондентом")

	// Прежний респондент снова занят, кандидат свободен
	snapshot := dir.AvailabilitySnapshot()
	assert.Equal(t, 1, snapshot[models.ZoneNorth].Available)
}

func TestRegisterResponder_UnrecognizedZone(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestDispatchService(t)

	// Действие
	err := svc.RegisterResponder(context.Background(), &models.Responder{
		Name:  "Тестовый респондент",
		Phone: "+70000000000",
		Zone:  "center",
	})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterResponder_Success_IndexesInDirectory(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	responder := &models.Responder{
		Name:  "Тестовый респондент",
		Phone: "+70000000000",
		Zone:  "North", // регистр нормализуется
	}

	// Ожидания
	m.responders.EXPECT().
		Create(ctx, responder).
		DoAndReturn(func(_ context.Context, r *models.Responder) error {
			r.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Действие
	err := svc.RegisterResponder(ctx, responder)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.ZoneNorth, responder.Zone)
	assert.True(t, responder.Available)
	assert.GreaterOrEqual(t, responder.X, 0.0)
	assert.LessOrEqual(t, responder.X, 100.0)

	inZone := dir.InZone(models.ZoneNorth)
	require.Len(t, inZone, 1)
	assert.Equal(t, responder.ID, inZone[0].ID)
}

func TestRegisterUser_SeedsCoordinatesFromZone(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()

	user := &models.User{
		Name:  "Тестовый заявитель",
		Phone: "+70000000001",
		Zone:  "south",
	}

	// Ожидания
	m.users.EXPECT().
		Create(ctx, user).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Действие
	err := svc.RegisterUser(ctx, user)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.RoleRequester, user.Role)
	// Под-прямоугольник южной зоны: якорь (50, 20), разброс 20
	assert.InDelta(t, 50, user.X, 20.0)
	assert.GreaterOrEqual(t, user.Y, 0.0)
	assert.LessOrEqual(t, user.Y, 40.0)
}

func TestRestore_RebuildsDirectoryAndQueue(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	northResponder := newTestResponder(models.ZoneNorth, 50, 80)
	pending := []*models.Alert{
		{ID: uuid.New(), Zone: models.ZoneNorth, Status: models.StatusWaiting},
		{ID: uuid.New(), Zone: models.ZoneSouth, Status: models.StatusActive},
	}

	// Ожидания
	m.responders.EXPECT().
		ListByZone(ctx, models.ZoneNorth).
		Return([]*models.Responder{northResponder}, nil).
		Times(1)
	m.responders.EXPECT().
		ListByZone(ctx, gomock.Any()).
		Return(nil, nil).
		Times(3) // остальные зоны пусты
	m.alerts.EXPECT().
		LoadPending(ctx).
		Return(pending, nil).
		Times(1)

	// Действие
	err := svc.Restore(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, svc.queue, 2)
	assert.Len(t, dir.InZone(models.ZoneNorth), 1)
}

func TestPickLocked_FallsBackToDurableScan(t *testing.T) {
	// Подготовка
	svc, m, dir := newTestDispatchService(t)
	ctx := context.Background()

	// Респондент есть только в хранилище (зарегистрирован другим процессом)
	durable := newTestResponder(models.ZoneWest, 20, 50)
	alert := &models.Alert{ID: uuid.New(), Zone: models.ZoneWest, Status: models.StatusActive}
	svc.queue = []*models.Alert{alert}

	// Ожидания
	m.responders.EXPECT().
		FindAvailableInZone(ctx, models.ZoneWest, gomock.Nil()).
		Return(durable, nil).
		Times(1)
	expectClaim(m, durable.ID)

	// Действие
	require.NoError(t, svc.ProcessNext(ctx))

	// Проверки: найденный респондент проиндексирован и занят
	assert.Equal(t, models.StatusAssigned, alert.Status)
	assert.Len(t, dir.InZone(models.ZoneWest), 1)
	snapshot := dir.AvailabilitySnapshot()
	assert.Equal(t, 0, snapshot[models.ZoneWest].Available)
}

func TestEscalations_PropagatesRepositoryError(t *testing.T) {
	// Подготовка
	svc, m, _ := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания
	m.dispatches.EXPECT().
		ListEscalations(ctx, 20).
		Return(nil, fmt.Errorf("connection reset")).
		Times(1)

	// Действие
	entries, err := svc.Escalations(ctx, 20)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Nil(t, entries)
}
