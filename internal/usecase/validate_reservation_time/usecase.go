package validate_reservation_time

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/internal/availability"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

// UseCase use case для проверки произвольного интервала бронирования
type UseCase struct {
	fieldRepo       FieldRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fieldRepo FieldRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		fieldRepo:       fieldRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку интервала. Неудачное время (вне часов работы,
// неподходящая длительность, занятый слот) - это Valid=false, а не ошибка:
// ошибки остаются за некорректным вводом и инфраструктурой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateReservationTime: field=%d, date=%s, time=%s-%s",
		req.FieldID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	start, end, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ValidateReservationTime: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем поле
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("ValidateReservationTime: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("ValidateReservationTime: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 3. Проверяем длительность: допускается любая в диапазоне поля,
	// не только фиксированная нарезка
	duration := timeutil.NormalizeEnd(start, end) - start
	if duration < field.MinSlotMinutes || duration > field.FixedSlotMinutes {
		uc.logger.Info("ValidateReservationTime: duration %d min is outside [%d, %d]",
			duration, field.MinSlotMinutes, field.FixedSlotMinutes)
		return &Response{Valid: false}, nil
	}

	// 4. Загружаем активные бронирования на дату и следующий день
	reservations, err := uc.reservationRepo.GetByFieldAndDates(ctx, req.FieldID, req.Date, req.Date.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("ValidateReservationTime: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Строим таймлайн занятости
	tl, err := availability.Build(field, req.Date, reservations, 0)
	if err != nil {
		if errors.Is(err, domain.ErrFieldMisconfigured) {
			uc.logger.Warn("ValidateReservationTime: field id=%d is misconfigured", req.FieldID)
			return nil, ErrFieldMisconfigured
		}
		uc.logger.Error("ValidateReservationTime: failed to build timeline: %v", err)
		return nil, fmt.Errorf("%w: failed to build timeline: %v", ErrInternal, err)
	}

	// 6. Интервал валиден, если он целиком помещается в одно свободное окно
	// фиксированной нарезки
	iv, ok := tl.AlignInterval(start, end)
	if !ok {
		uc.logger.Info("ValidateReservationTime: interval is outside operating hours")
		return &Response{Valid: false}, nil
	}

	valid := tl.CoveredByFreeSlot(iv, field.FixedSlotMinutes)

	uc.logger.Info("ValidateReservationTime: field=%d, time=%s-%s: valid=%t",
		req.FieldID, req.StartTime, req.EndTime, valid)

	return &Response{Valid: valid}, nil
}
