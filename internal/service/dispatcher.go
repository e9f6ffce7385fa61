package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/config"
	"github.com/shenikar/emergency_dispatch_system/internal/directory"
	"github.com/shenikar/emergency_dispatch_system/internal/geo"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд заявок
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	UpdateStatusAndResponder(ctx context.Context, id uuid.UUID, status models.AlertStatus, responderID *uuid.UUID) error
	LoadPending(ctx context.Context) ([]*models.Alert, error)
	AppendStatusHistory(ctx context.Context, entry *models.StatusHistoryEntry) error
}

// ResponderRepository определяет контракт для работы с бд респондентов
type ResponderRepository interface {
	Create(ctx context.Context, responder *models.Responder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Responder, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	FindAvailableInZone(ctx context.Context, zone string, excludeID *uuid.UUID) (*models.Responder, error)
	ListByZone(ctx context.Context, zone string) ([]*models.Responder, error)
}

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// DispatchRepository - стоки записей о назначениях и эскалациях
type DispatchRepository interface {
	RecordDispatch(ctx context.Context, alertID, responderID uuid.UUID, distanceKm float64) error
	CloseDispatch(ctx context.Context, alertID, responderID uuid.UUID) error
	RecordEscalation(ctx context.Context, entry *models.EscalationEntry) error
	ListEscalations(ctx context.Context, limit int) ([]*models.EscalationEntry, error)
}

// DispatchService определяет контракт ядра диспетчеризации заявок
type DispatchService interface {
	RegisterUser(ctx context.Context, user *models.User) error
	RegisterResponder(ctx context.Context, responder *models.Responder) error
	Submit(ctx context.Context, alert *models.Alert) error
	ProcessNext(ctx context.Context) error
	ProcessAllPending(ctx context.Context) error
	CompleteAlert(ctx context.Context, alertID uuid.UUID) error
	Reassign(ctx context.Context, alert *models.Alert) error
	CheckUnassigned(ctx context.Context) error
	PendingAlerts(ctx context.Context) ([]*models.Alert, error)
	RespondersInZone(ctx context.Context, zone string) ([]*models.Responder, error)
	Escalations(ctx context.Context, limit int) ([]*models.EscalationEntry, error)
	AvailabilityReport() map[string]directory.ZoneAvailability
	Restore(ctx context.Context) error
}

// dispatchService - ядро диспетчеризации.
// Мьютекс удерживается на протяжении всего перехода (чтение - решение - запись),
// очередь ожидающих заявок и статусы меняются только под ним.
type dispatchService struct {
	mu    sync.Mutex
	queue []*models.Alert

	alerts     AlertRepository
	responders ResponderRepository
	users      UserRepository
	dispatches DispatchRepository
	dir        *directory.Directory
	strategy   directory.Strategy
	publisher  notify.Publisher
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewDispatchService(
	alerts AlertRepository,
	responders ResponderRepository,
	users UserRepository,
	dispatches DispatchRepository,
	dir *directory.Directory,
	publisher notify.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	return &dispatchService{
		queue:      []*models.Alert{},
		alerts:     alerts,
		responders: responders,
		users:      users,
		dispatches: dispatches,
		dir:        dir,
		strategy:   directory.ParseStrategy(cfg.AssignStrategy),
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterUser регистрирует заявителя, сея координаты по его зоне
func (d *dispatchService) RegisterUser(ctx context.Context, user *models.User) error {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dispatcher",
		"method":  "RegisterUser",
		"name":    user.Name,
	})

	zone, ok := models.NormalizeZone(user.Zone)
	if !ok {
		log.Warn("Rejected user registration with unrecognized zone")
		return fmt.Errorf("%w: unrecognized zone %q", ErrValidation, user.Zone)
	}
	user.Zone = zone
	if user.Role == "" {
		user.Role = models.RoleRequester
	}
	user.X, user.Y = geo.Coordinate(zone)

	if err := d.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("%w: could not create user: %v", ErrPersistence, err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return nil
}

// RegisterResponder регистрирует респондента и добавляет его в каталог зон
func (d *dispatchService) RegisterResponder(ctx context.Context, responder *models.Responder) error {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dispatcher",
		"method":  "RegisterResponder",
		"name":    responder.Name,
	})

	zone, ok := models.NormalizeZone(responder.Zone)
	if !ok {
		log.Warn("Rejected responder registration with unrecognized zone")
		return fmt.Errorf("%w: unrecognized zone %q", ErrValidation, responder.Zone)
	}
	responder.Zone = zone
	responder.Available = true
	responder.X, responder.Y = geo.Coordinate(zone)

	if err := d.responders.Create(ctx, responder); err != nil {
		log.WithError(err).Error("Failed to create responder in repository")
		return fmt.Errorf("%w: could not create responder: %v", ErrPersistence, err)
	}

	if err := d.dir.Add(responder); err != nil {
		// зона уже проверена, сюда попасть нельзя
		log.WithError(err).Error("Failed to index responder in directory")
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	log.WithField("responder_id", responder.ID).Info("Responder registered successfully")
	return nil
}

// Submit сохраняет заявку, ставит ее в хвост очереди и сразу пытается назначить
// респондента. Сбой сохранения означает, что заявка НЕ попадает в очередь.
// Податель получает синхронный ответ через alert.Status: ASSIGNED или WAITING.
func (d *dispatchService) Submit(ctx context.Context, alert *models.Alert) error {
	log := d.logger.WithFields(logrus.Fields{
		"service":      "dispatcher",
		"method":       "Submit",
		"requester_id": alert.RequesterID,
	})
	log.Info("Submitting new alert")

	requester, err := d.users.GetByID(ctx, alert.RequesterID)
	if err != nil {
		log.WithError(err).Warn("Requester not found for alert submission")
		return fmt.Errorf("%w: requester %s: %v", ErrNotFound, alert.RequesterID, err)
	}

	zone, ok := models.NormalizeZone(requester.Zone)
	if !ok {
		log.Warn("Requester has unrecognized zone")
		return fmt.Errorf("%w: requester zone %q is unrecognized", ErrValidation, requester.Zone)
	}

	alert.Zone = zone
	alert.X = requester.X
	alert.Y = requester.Y
	alert.Status = models.StatusActive
	alert.ResponderID = nil

	if err := d.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to persist alert, not enqueueing")
		return fmt.Errorf("%w: could not create alert: %v", ErrPersistence, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.queue = append(d.queue, alert)

	switch err := d.assignLocked(ctx, alert, nil); {
	case err == nil:
		d.removeFromQueueLocked(alert.ID)
		log.WithField("alert_id", alert.ID).WithField("responder_id", *alert.ResponderID).Info("Alert assigned on submission")
		return nil
	case errors.Is(err, ErrNoResponder):
		log.WithField("alert_id", alert.ID).Info("No responder available, alert is waiting")
		return d.markWaitingLocked(ctx, alert, "no available responder in zone at submission")
	default:
		log.WithError(err).Error("Assignment attempt failed on submission")
		return err
	}
}

// ProcessNext пытается назначить респондента на голову очереди.
// Голова снимается только при успехе; при неудаче заявка помечается WAITING
// и остается на месте - повторные вызовы идемпотентны и не меняют порядок.
func (d *dispatchService) ProcessNext(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.queue) == 0 {
		return nil
	}

	head := d.queue[0]
	switch err := d.assignLocked(ctx, head, nil); {
	case err == nil:
		d.queue = d.queue[1:]
		return nil
	case errors.Is(err, ErrNoResponder):
		return d.markWaitingLocked(ctx, head, "no available responder in zone")
	default:
		return err
	}
}

// ProcessAllPending делает один проход по очереди, ограниченный ее размером на
// момент вызова. Назначенные заявки покидают очередь, ожидающие уходят в хвост -
// ротация не дает вечно неназначаемой заявке блокировать остальные.
func (d *dispatchService) ProcessAllPending(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.processAllPendingLocked(ctx)
	return nil
}

func (d *dispatchService) processAllPendingLocked(ctx context.Context) {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dispatcher",
		"method":  "ProcessAllPending",
	})

	// снимок размера: добавленное во время прохода не посещается в этом же проходе
	n := len(d.queue)
	for i := 0; i < n; i++ {
		alert := d.queue[0]
		d.queue = d.queue[1:]

		switch err := d.assignLocked(ctx, alert, nil); {
		case err == nil:
			log.WithField("alert_id", alert.ID).Info("Pending alert assigned")
			continue
		case errors.Is(err, ErrNoResponder):
			if wErr := d.markWaitingLocked(ctx, alert, "no available responder in zone"); wErr != nil {
				log.WithError(wErr).Error("Failed to mark alert as waiting")
			}
		default:
			log.WithError(err).WithField("alert_id", alert.ID).Error("Assignment attempt failed during queue pass")
		}
		d.queue = append(d.queue, alert)
	}
}

// CompleteAlert выполняет переход ASSIGNED -> RESOLVED: закрывает запись о
// назначении, освобождает респондента и повторно прогоняет очередь ожидающих.
// Заявка без назначенного респондента не завершается - это отчет, не ошибка.
func (d *dispatchService) CompleteAlert(ctx context.Context, alertID uuid.UUID) error {
	log := d.logger.WithFields(logrus.Fields{
		"service":  "dispatcher",
		"method":   "CompleteAlert",
		"alert_id": alertID,
	})
	log.Info("Completing alert")

	d.mu.Lock()
	defer d.mu.Unlock()

	alert, err := d.alerts.GetByID(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Alert not found for completion")
		return fmt.Errorf("%w: alert %s: %v", ErrNotFound, alertID, err)
	}

	// RESOLVED - терминальный статус: повторное завершение ничего не меняет
	if alert.Status == models.StatusResolved {
		log.Warn("Completion requested for already resolved alert")
		return nil
	}

	if alert.ResponderID == nil {
		log.Warn("Completion requested for alert without assigned responder")
		return nil
	}

	responderID := *alert.ResponderID
	prevStatus := alert.Status

	if err := d.alerts.UpdateStatusAndResponder(ctx, alert.ID, models.StatusResolved, alert.ResponderID); err != nil {
		log.WithError(err).Error("Failed to persist alert resolution")
		return fmt.Errorf("%w: could not resolve alert: %v", ErrPersistence, err)
	}

	if err := d.responders.SetAvailability(ctx, responderID, true); err != nil {
		// откат: заявка возвращается в прежний статус
		if rbErr := d.alerts.UpdateStatusAndResponder(ctx, alert.ID, prevStatus, alert.ResponderID); rbErr != nil {
			log.WithError(rbErr).Error("Rollback of alert resolution failed")
		}
		log.WithError(err).Error("Failed to release responder")
		return fmt.Errorf("%w: could not release responder: %v", ErrPersistence, err)
	}

	d.dir.SetAvailable(responderID, true)

	// стоки - best-effort, сбой не отменяет завершение
	if err := d.dispatches.CloseDispatch(ctx, alert.ID, responderID); err != nil {
		log.WithError(err).Error("Failed to close dispatch record")
	}
	d.appendHistoryLocked(ctx, alert.ID, prevStatus, models.StatusResolved, &responderID)

	log.WithField("responder_id", responderID).Info("Alert resolved, responder released")

	// освобожденный респондент мог разблокировать ожидающих
	d.processAllPendingLocked(ctx)
	return nil
}

// Reassign ищет свободного респондента в зоне заявки, исключая текущего.
// При неудаче пишет эскалацию и оставляет заявку в WAITING.
func (d *dispatchService) Reassign(ctx context.Context, alert *models.Alert) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.reassignLocked(ctx, alert); err != nil {
		return err
	}
	d.removeFromQueueLocked(alert.ID)
	return nil
}

func (d *dispatchService) reassignLocked(ctx context.Context, alert *models.Alert) error {
	log := d.logger.WithFields(logrus.Fields{
		"service":  "dispatcher",
		"method":   "Reassign",
		"alert_id": alert.ID,
	})

	previousID := alert.ResponderID
	candidate, err := d.pickLocked(ctx, alert, previousID)
	if err != nil {
		return err
	}
	if candidate == nil {
		d.recordEscalationLocked(ctx, alert, "no available responder in zone for reassignment")
		return fmt.Errorf("%w: zone %s", ErrNoResponder, alert.Zone)
	}

	// освобождение прежнего респондента, если он был
	if previousID != nil {
		if err := d.responders.SetAvailability(ctx, *previousID, true); err != nil {
			log.WithError(err).Error("Failed to release previous responder")
			return fmt.Errorf("%w: could not release previous responder: %v", ErrPersistence, err)
		}
		d.dir.SetAvailable(*previousID, true)
	}

	if err := d.claimLocked(ctx, alert, candidate); err != nil {
		// компенсация: прежний респондент снова занят этой заявкой,
		// его запись о назначении остается открытой
		if previousID != nil {
			if rbErr := d.responders.SetAvailability(ctx, *previousID, false); rbErr != nil {
				log.WithError(rbErr).Error("Rollback of previous responder release failed")
			}
			d.dir.SetAvailable(*previousID, false)
		}
		return err
	}

	// прежняя запись о назначении закрывается только после фиксации новой
	if previousID != nil {
		if err := d.dispatches.CloseDispatch(ctx, alert.ID, *previousID); err != nil {
			log.WithError(err).Error("Failed to close prior dispatch record")
		}
	}

	log.WithField("responder_id", *alert.ResponderID).Info("Alert reassigned")
	return nil
}

// CheckUnassigned повторяет назначение для всех незакрытых заявок очереди.
// Очередь содержит и WAITING, и ACTIVE (восстановленные после рестарта) заявки,
// обход затрагивает обе: после рестарта никакой другой фоновый путь их не посещает.
// Точка входа только для периодического планировщика.
func (d *dispatchService) CheckUnassigned(ctx context.Context) error {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dispatcher",
		"method":  "CheckUnassigned",
	})

	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.queue) == 0 {
		return nil
	}
	log.WithField("pending", len(d.queue)).Info("Reassignment sweep started")

	d.processAllPendingLocked(ctx)
	return nil
}

// PendingAlerts возвращает незакрытые заявки из хранилища (ACTIVE и WAITING)
func (d *dispatchService) PendingAlerts(ctx context.Context) ([]*models.Alert, error) {
	pending, err := d.alerts.LoadPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: could not load pending alerts: %v", ErrPersistence, err)
	}
	return pending, nil
}

// RespondersInZone возвращает респондентов зоны из каталога
func (d *dispatchService) RespondersInZone(_ context.Context, zone string) ([]*models.Responder, error) {
	return d.dir.InZone(zone), nil
}

// Escalations возвращает последние записи об исчерпании зон
func (d *dispatchService) Escalations(ctx context.Context, limit int) ([]*models.EscalationEntry, error) {
	entries, err := d.dispatches.ListEscalations(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list escalations: %v", ErrPersistence, err)
	}
	return entries, nil
}

// AvailabilityReport возвращает срез доступности респондентов по зонам
func (d *dispatchService) AvailabilityReport() map[string]directory.ZoneAvailability {
	return d.dir.AvailabilitySnapshot()
}

// Restore восстанавливает состояние после рестарта: каталог из хранилища
// респондентов, очередь - из незакрытых заявок (по возрастанию времени создания)
func (d *dispatchService) Restore(ctx context.Context) error {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dispatcher",
		"method":  "Restore",
	})

	for _, zone := range models.Zones() {
		responders, err := d.responders.ListByZone(ctx, zone)
		if err != nil {
			return fmt.Errorf("%w: could not list responders in zone %s: %v", ErrPersistence, zone, err)
		}
		for _, r := range responders {
			if err := d.dir.Add(r); err != nil {
				log.WithError(err).WithField("responder_id", r.ID).Warn("Skipping responder with invalid zone")
			}
		}
	}

	pending, err := d.alerts.LoadPending(ctx)
	if err != nil {
		return fmt.Errorf("%w: could not load pending alerts: %v", ErrPersistence, err)
	}

	d.mu.Lock()
	d.queue = pending
	d.mu.Unlock()

	log.WithField("pending", len(pending)).Info("Dispatcher state restored")
	return nil
}

// pickLocked выбирает свободного респондента зоны заявки: сначала каталог,
// затем durable-скан хранилища (респонденты, зарегистрированные вне этого процесса)
func (d *dispatchService) pickLocked(ctx context.Context, alert *models.Alert, excludeID *uuid.UUID) (*models.Responder, error) {
	if candidate := d.dir.Pick(d.strategy, alert.X, alert.Y, alert.Zone, excludeID); candidate != nil {
		return candidate, nil
	}

	found, err := d.responders.FindAvailableInZone(ctx, alert.Zone, excludeID)
	if err != nil {
		d.logger.WithError(err).Warn("Durable responder scan failed, treating zone as exhausted")
		return nil, nil
	}
	if found == nil {
		return nil, nil
	}
	if err := d.dir.Add(found); err != nil {
		return nil, nil
	}
	return found, nil
}

// claimLocked атомарно (под мьютексом диспетчера) занимает респондента и
// фиксирует назначение. Сбой сохранения откатывает память к состоянию до перехода.
func (d *dispatchService) claimLocked(ctx context.Context, alert *models.Alert, responder *models.Responder) error {
	log := d.logger.WithFields(logrus.Fields{
		"service":      "dispatcher",
		"alert_id":     alert.ID,
		"responder_id": responder.ID,
	})

	prev, ok := d.dir.SetAvailable(responder.ID, false)
	if !ok {
		return fmt.Errorf("%w: responder %s is not indexed", ErrNotFound, responder.ID)
	}
	if !prev {
		// двойное назначение: выбранный респондент уже занят
		return fmt.Errorf("%w: responder %s is already busy", ErrConcurrency, responder.ID)
	}

	if err := d.responders.SetAvailability(ctx, responder.ID, false); err != nil {
		d.dir.SetAvailable(responder.ID, true)
		return fmt.Errorf("%w: could not persist responder availability: %v", ErrPersistence, err)
	}

	prevStatus := alert.Status
	if err := d.alerts.UpdateStatusAndResponder(ctx, alert.ID, models.StatusAssigned, &responder.ID); err != nil {
		if rbErr := d.responders.SetAvailability(ctx, responder.ID, true); rbErr != nil {
			log.WithError(rbErr).Error("Rollback of responder availability failed")
		}
		d.dir.SetAvailable(responder.ID, true)
		return fmt.Errorf("%w: could not persist alert assignment: %v", ErrPersistence, err)
	}

	responderID := responder.ID
	alert.Status = models.StatusAssigned
	alert.ResponderID = &responderID

	distanceKm := directory.Distance(alert.X, alert.Y, responder.X, responder.Y)
	if err := d.dispatches.RecordDispatch(ctx, alert.ID, responderID, distanceKm); err != nil {
		log.WithError(err).Error("Failed to open dispatch record")
	}
	d.appendHistoryLocked(ctx, alert.ID, prevStatus, models.StatusAssigned, &responderID)

	// уведомление после фиксации перехода; сбой доставки не отменяет назначение
	event := notify.AssignmentEvent{
		AlertID:        alert.ID,
		RequesterID:    alert.RequesterID,
		ResponderID:    responderID,
		ResponderName:  responder.Name,
		ResponderPhone: responder.Phone,
		Zone:           alert.Zone,
		DistanceKm:     distanceKm,
		AssignedAt:     time.Now(),
	}
	if err := d.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish assignment notification")
	}
	return nil
}

// assignLocked - переход ACTIVE/WAITING -> ASSIGNED
func (d *dispatchService) assignLocked(ctx context.Context, alert *models.Alert, excludeID *uuid.UUID) error {
	candidate, err := d.pickLocked(ctx, alert, excludeID)
	if err != nil {
		return err
	}
	if candidate == nil {
		return fmt.Errorf("%w: zone %s", ErrNoResponder, alert.Zone)
	}
	return d.claimLocked(ctx, alert, candidate)
}

// markWaitingLocked - переход ACTIVE -> WAITING.
// Эскалация пишется при каждом исчерпании зоны; статус и история - только при
// фактической смене, поэтому повторная пометка головы очереди идемпотентна.
func (d *dispatchService) markWaitingLocked(ctx context.Context, alert *models.Alert, reason string) error {
	d.recordEscalationLocked(ctx, alert, reason)

	if alert.Status == models.StatusWaiting {
		return nil
	}

	prevStatus := alert.Status
	if err := d.alerts.UpdateStatusAndResponder(ctx, alert.ID, models.StatusWaiting, alert.ResponderID); err != nil {
		return fmt.Errorf("%w: could not persist waiting status: %v", ErrPersistence, err)
	}
	alert.Status = models.StatusWaiting
	d.appendHistoryLocked(ctx, alert.ID, prevStatus, models.StatusWaiting, alert.ResponderID)
	return nil
}

// recordEscalationLocked пишет эскалацию best-effort: сбой логируется и никогда
// не прерывает операцию вызывающего
func (d *dispatchService) recordEscalationLocked(ctx context.Context, alert *models.Alert, reason string) {
	entry := &models.EscalationEntry{
		AlertID: alert.ID,
		Zone:    alert.Zone,
		Reason:  reason,
		At:      time.Now(),
	}
	if err := d.dispatches.RecordEscalation(ctx, entry); err != nil {
		d.logger.WithError(err).WithField("alert_id", alert.ID).Error("Failed to record escalation entry")
	}
}

func (d *dispatchService) appendHistoryLocked(ctx context.Context, alertID uuid.UUID, prev, next models.AlertStatus, responderID *uuid.UUID) {
	entry := &models.StatusHistoryEntry{
		AlertID:     alertID,
		PrevStatus:  prev,
		NewStatus:   next,
		ResponderID: responderID,
		At:          time.Now(),
	}
	if err := d.alerts.AppendStatusHistory(ctx, entry); err != nil {
		d.logger.WithError(err).WithField("alert_id", alertID).Error("Failed to append status history entry")
	}
}

func (d *dispatchService) removeFromQueueLocked(alertID uuid.UUID) {
	for i, queued := range d.queue {
		if queued.ID == alertID {
			d.queue = append(d.queue[:i], d.queue[i+1:]...)
			return
		}
	}
}
