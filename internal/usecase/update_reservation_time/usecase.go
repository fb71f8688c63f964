package update_reservation_time

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/internal/availability"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	reservationRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/reservation"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

// UseCase use case для переноса бронирования на другое время
type UseCase struct {
	fieldRepo       FieldRepository
	reservationRepo ReservationRepository
	clubClient      ClubServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fieldRepo FieldRepository,
	reservationRepo ReservationRepository,
	clubClient ClubServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		fieldRepo:       fieldRepo,
		reservationRepo: reservationRepo,
		clubClient:      clubClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет перенос бронирования. Новый интервал проходит ту же
// проверку доступности, что и создание, в сериализуемой транзакции;
// собственная заявка исключается из таймлайна, чтобы не блокировать сама
// себя при переносе внутри своего же окна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservationTime: reservation=%d, user=%d, date=%s, time=%s-%s",
		req.ReservationID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	start, end, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateReservationTime: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем бронирование без блокировки для проверки прав
	peek, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservationTime: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservationTime: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Перенести заявку может её владелец или менеджер клуба
	if peek.UserID != req.UserID {
		field, err := uc.fieldRepo.GetByID(ctx, peek.FieldID)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				uc.logger.Warn("UpdateReservationTime: field id=%d not found", peek.FieldID)
				return nil, ErrFieldNotFound
			}
			uc.logger.Error("UpdateReservationTime: failed to get field id=%d: %v", peek.FieldID, err)
			return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}

		isManager, err := uc.clubClient.IsManager(ctx, field.ClubID, req.UserID)
		if err != nil {
			uc.logger.Error("UpdateReservationTime: failed to check manager rights: %v", err)
			return nil, fmt.Errorf("%w: failed to check manager rights: %v", ErrInternal, err)
		}
		if !isManager {
			uc.logger.Warn("UpdateReservationTime: user id=%d has no access to reservation id=%d",
				req.UserID, req.ReservationID)
			return nil, ErrAccessDenied
		}
	}

	// Переменные для хранения результата
	var (
		result *domain.Reservation
		price  float64
	)

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем бронирование с блокировкой (FOR UPDATE)
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservationTime: failed to lock reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to lock reservation: %v", ErrInternal, err)
		}

		if !res.CanBeRescheduled() {
			uc.logger.Warn("UpdateReservationTime: reservation id=%d has status %s", res.ID, res.Status)
			return fmt.Errorf("%w: status is %s", ErrCannotReschedule, res.Status)
		}

		// 4.2. Получаем поле с актуальной конфигурацией
		field, err := uc.fieldRepo.GetByID(txCtx, res.FieldID)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				return ErrFieldNotFound
			}
			uc.logger.Error("UpdateReservationTime: failed to get field id=%d: %v", res.FieldID, err)
			return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}

		// 4.3. Проверяем длительность нового интервала
		duration := timeutil.NormalizeEnd(start, end) - start
		if duration < field.MinSlotMinutes || duration > field.FixedSlotMinutes {
			uc.logger.Warn("UpdateReservationTime: duration %d min is outside [%d, %d]",
				duration, field.MinSlotMinutes, field.FixedSlotMinutes)
			return fmt.Errorf("%w: allowed range is [%d, %d] minutes",
				ErrDurationOutOfRange, field.MinSlotMinutes, field.FixedSlotMinutes)
		}

		// 4.4. Загружаем активные бронирования на новую дату с блокировкой
		// (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByFieldAndDates(txCtx, res.FieldID, req.Date, req.Date.AddDate(0, 0, 1))
		if err != nil {
			uc.logger.Error("UpdateReservationTime: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.5. Строим таймлайн без собственной заявки и проверяем новый интервал
		tl, err := availability.Build(field, req.Date, reservations, res.ID)
		if err != nil {
			if errors.Is(err, domain.ErrFieldMisconfigured) {
				uc.logger.Warn("UpdateReservationTime: field id=%d is misconfigured", res.FieldID)
				return ErrFieldMisconfigured
			}
			uc.logger.Error("UpdateReservationTime: failed to build timeline: %v", err)
			return fmt.Errorf("%w: failed to build timeline: %v", ErrInternal, err)
		}

		iv, ok := tl.AlignInterval(start, end)
		if !ok {
			uc.logger.Warn("UpdateReservationTime: interval %s-%s is outside operating hours", req.StartTime, req.EndTime)
			return ErrSlotUnavailable
		}
		if !tl.CoveredByFreeSlot(iv, field.FixedSlotMinutes) {
			uc.logger.Warn("UpdateReservationTime: interval %s-%s is not available", req.StartTime, req.EndTime)
			return ErrSlotUnavailable
		}

		// 4.6. Пересчитываем стоимость по текущей ставке поля
		price, err = domain.Cost(field.PricePerHour, duration, field.MinSlotMinutes, field.FixedSlotMinutes)
		if err != nil {
			uc.logger.Error("UpdateReservationTime: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}

		// 4.7. Переносим бронирование: статус сбрасывается в pending,
		// площадка снимается
		if err := uc.reservationRepo.UpdateTimeSlot(txCtx, res.ID, req.Date, req.StartTime, req.EndTime, price); err != nil {
			uc.logger.Error("UpdateReservationTime: failed to update reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		if isSerializationConflict(err) {
			uc.logger.Warn("UpdateReservationTime: serialization conflict for reservation=%d", req.ReservationID)
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}

	uc.logger.Info("UpdateReservationTime: reservation id=%d moved to %s %s-%s",
		result.ID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		FieldID:   result.FieldID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    string(domain.StatusPending),
		Price:     price,
	}, nil
}
