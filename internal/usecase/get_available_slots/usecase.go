package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/internal/availability"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
)

// UseCase use case для получения доступных слотов поля на дату
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

// Execute выполняет use case получения доступных слотов.
// Таймлайн строится на каждый запрос заново: бронирования загружаются
// на саму дату и на следующий день, чтобы учесть поля, работающие за
// полночь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: field=%d, date=%s", req.FieldID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем поле
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailableSlots: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 3. Загружаем активные бронирования на дату и следующий день
	reservations, err := uc.reservationRepo.GetByFieldAndDates(ctx, req.FieldID, req.Date, req.Date.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Строим поминутный таймлайн занятости
	tl, err := availability.Build(field, req.Date, reservations, 0)
	if err != nil {
		if errors.Is(err, domain.ErrFieldMisconfigured) {
			uc.logger.Warn("GetAvailableSlots: field id=%d is misconfigured", req.FieldID)
			return nil, ErrFieldMisconfigured
		}
		uc.logger.Error("GetAvailableSlots: failed to build timeline: %v", err)
		return nil, fmt.Errorf("%w: failed to build timeline: %v", ErrInternal, err)
	}

	// 5. Нарезаем свободные окна на слоты и собираем спорные окна
	free := tl.FreeSlots(req.Date, field.FixedSlotMinutes)
	pending := tl.PendingSlots(req.Date, field.FixedSlotMinutes, field.MinSlotMinutes, domain.PendingSlotComment)

	uc.logger.Info("GetAvailableSlots: field=%d, date=%s: %d free, %d pending",
		req.FieldID, req.Date.Format(domain.DateFormat), len(free), len(pending))

	return &Response{
		FieldID:      req.FieldID,
		Date:         req.Date,
		FreeSlots:    free,
		PendingSlots: pending,
	}, nil
}
