package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/internal/availability"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

// UseCase use case для создания бронирования
type UseCase struct {
	fieldRepo       FieldRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fieldRepo FieldRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		fieldRepo:       fieldRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк FOR UPDATE: параллельные заявки на один
// интервал не могут пройти проверку одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, field=%d, date=%s, time=%s-%s",
		req.UserID, req.FieldID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	start, end, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем поле
		field, err := uc.fieldRepo.GetByID(txCtx, req.FieldID)
		if err != nil {
			if errors.Is(err, fieldRepo.ErrFieldNotFound) {
				uc.logger.Warn("CreateReservation: field id=%d not found", req.FieldID)
				return ErrFieldNotFound
			}
			uc.logger.Error("CreateReservation: failed to get field id=%d: %v", req.FieldID, err)
			return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}

		// 2.2. Проверяем длительность по диапазону поля
		duration := timeutil.NormalizeEnd(start, end) - start
		if duration < field.MinSlotMinutes || duration > field.FixedSlotMinutes {
			uc.logger.Warn("CreateReservation: duration %d min is outside [%d, %d]",
				duration, field.MinSlotMinutes, field.FixedSlotMinutes)
			return fmt.Errorf("%w: allowed range is [%d, %d] minutes",
				ErrDurationOutOfRange, field.MinSlotMinutes, field.FixedSlotMinutes)
		}

		// 2.3. Загружаем активные бронирования с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByFieldAndDates(txCtx, req.FieldID, req.Date, req.Date.AddDate(0, 0, 1))
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 2.4. Строим таймлайн и проверяем, что интервал целиком помещается
		// в свободное окно
		tl, err := availability.Build(field, req.Date, reservations, 0)
		if err != nil {
			if errors.Is(err, domain.ErrFieldMisconfigured) {
				uc.logger.Warn("CreateReservation: field id=%d is misconfigured", req.FieldID)
				return ErrFieldMisconfigured
			}
			uc.logger.Error("CreateReservation: failed to build timeline: %v", err)
			return fmt.Errorf("%w: failed to build timeline: %v", ErrInternal, err)
		}

		iv, ok := tl.AlignInterval(start, end)
		if !ok {
			uc.logger.Warn("CreateReservation: interval %s-%s is outside operating hours", req.StartTime, req.EndTime)
			return ErrSlotUnavailable
		}
		if !tl.CoveredByFreeSlot(iv, field.FixedSlotMinutes) {
			uc.logger.Warn("CreateReservation: interval %s-%s is not available", req.StartTime, req.EndTime)
			return ErrSlotUnavailable
		}

		// 2.5. Фиксируем стоимость по текущей ставке поля
		price, err := domain.Cost(field.PricePerHour, duration, field.MinSlotMinutes, field.FixedSlotMinutes)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}

		// 2.6. Создаем бронирование в статусе pending: площадка назначается
		// только при подтверждении менеджером
		reservation := &domain.Reservation{
			FieldID:   req.FieldID,
			UserID:    req.UserID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.StatusPending,
			Price:     price,
			Notes:     req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if isSerializationConflict(err) {
			uc.logger.Warn("CreateReservation: serialization conflict for field=%d, date=%s",
				req.FieldID, req.Date.Format(domain.DateFormat))
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		FieldID:   result.FieldID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		Price:     result.Price,
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
