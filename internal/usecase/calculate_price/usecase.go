package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
)

// UseCase use case для расчёта стоимости бронирования
type UseCase struct {
	fieldRepo FieldRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fieldRepo FieldRepository, logger Logger) *UseCase {
	return &UseCase{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

// Execute выполняет расчёт стоимости по часовой ставке поля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: field=%d, duration=%d", req.FieldID, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем поле с его ставкой и диапазоном длительности
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("CalculatePrice: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 3. Считаем стоимость
	price, err := domain.Cost(field.PricePerHour, req.DurationMinutes, field.MinSlotMinutes, field.FixedSlotMinutes)
	if err != nil {
		if errors.Is(err, domain.ErrDurationOutOfRange) {
			uc.logger.Warn("CalculatePrice: duration %d min is outside [%d, %d]",
				req.DurationMinutes, field.MinSlotMinutes, field.FixedSlotMinutes)
			return nil, fmt.Errorf("%w: allowed range is [%d, %d] minutes",
				ErrDurationOutOfRange, field.MinSlotMinutes, field.FixedSlotMinutes)
		}
		uc.logger.Warn("CalculatePrice: cost calculation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("CalculatePrice: field=%d, duration=%d: price=%.2f", req.FieldID, req.DurationMinutes, price)

	return &Response{
		FieldID:         req.FieldID,
		DurationMinutes: req.DurationMinutes,
		PricePerHour:    field.PricePerHour,
		Price:           price,
	}, nil
}
