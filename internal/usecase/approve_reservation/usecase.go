package approve_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avolkhov/SFP-FieldService/internal/availability"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	reservationRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/reservation"
)

// UseCase use case для подтверждения бронирования менеджером клуба
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

// Execute выполняет подтверждение бронирования. Подтверждение - точка
// сериализации: именно здесь заявке назначается конкретная площадка, и
// именно здесь отклоняются заявки, на которые ёмкости уже не хватило.
// Проверка прав выполняется вне транзакции, все операции с БД - внутри
// сериализуемой транзакции с блокировкой FOR UPDATE.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveReservation: reservation=%d, manager=%d", req.ReservationID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApproveReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем бронирование без блокировки, чтобы узнать поле и клуб
	peek, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("ApproveReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("ApproveReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	field, err := uc.fieldRepo.GetByID(ctx, peek.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("ApproveReservation: field id=%d not found", peek.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("ApproveReservation: failed to get field id=%d: %v", peek.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 3. Проверяем, что пользователь - менеджер клуба, владеющего полем
	isManager, err := uc.clubClient.IsManager(ctx, field.ClubID, req.UserID)
	if err != nil {
		uc.logger.Error("ApproveReservation: failed to check manager rights: %v", err)
		return nil, fmt.Errorf("%w: failed to check manager rights: %v", ErrInternal, err)
	}
	if !isManager {
		uc.logger.Warn("ApproveReservation: user id=%d is not a manager of club id=%d", req.UserID, field.ClubID)
		return nil, ErrAccessDenied
	}

	// Переменные для хранения результата
	var (
		result    *domain.Reservation
		terrainID int64
	)

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем бронирование с блокировкой (FOR UPDATE)
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("ApproveReservation: failed to lock reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to lock reservation: %v", ErrInternal, err)
		}

		if !res.CanBeApproved() {
			uc.logger.Warn("ApproveReservation: reservation id=%d has status %s", res.ID, res.Status)
			return fmt.Errorf("%w: status is %s", ErrCannotApprove, res.Status)
		}

		// 4.2. Загружаем активные бронирования поля с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByFieldAndDates(txCtx, res.FieldID, res.Date, res.Date.AddDate(0, 0, 1))
		if err != nil {
			uc.logger.Error("ApproveReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.3. Строим таймлайн и проверяем, что подтверждённая занятость на
		// интервале заявки ещё не выбрала все площадки
		tl, err := availability.Build(field, res.Date, reservations, 0)
		if err != nil {
			uc.logger.Error("ApproveReservation: failed to build timeline: %v", err)
			return fmt.Errorf("%w: failed to build timeline: %v", ErrInternal, err)
		}

		iv, overlaps, err := availability.Project(field, res.Date, res)
		if err != nil {
			uc.logger.Error("ApproveReservation: failed to project reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to project reservation: %v", ErrInternal, err)
		}
		if !overlaps {
			// Часы работы поля изменились после создания заявки
			uc.logger.Warn("ApproveReservation: reservation id=%d no longer fits operating hours", res.ID)
			return ErrNoFreeTerrain
		}

		for i := iv.Start - tl.Opening; i < iv.End-tl.Opening; i++ {
			if tl.Approved[i] >= tl.TerrainCount {
				uc.logger.Warn("ApproveReservation: reservation id=%d: all terrains approved at minute %d",
					res.ID, tl.Opening+i)
				return ErrNoFreeTerrain
			}
		}

		// 4.4. Назначаем свободную площадку
		terrainID, err = pickTerrain(field, res.Date, iv, reservations, res.ID)
		if err != nil {
			uc.logger.Warn("ApproveReservation: reservation id=%d: %v", res.ID, err)
			return err
		}

		// 4.5. Подтверждаем бронирование
		if err := uc.reservationRepo.Approve(txCtx, res.ID, terrainID); err != nil {
			uc.logger.Error("ApproveReservation: failed to approve reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to approve reservation: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		if isSerializationConflict(err) {
			uc.logger.Warn("ApproveReservation: serialization conflict for reservation=%d", req.ReservationID)
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}

	uc.logger.Info("ApproveReservation: reservation id=%d approved, terrain=%d", result.ID, terrainID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		FieldID:   result.FieldID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(domain.StatusApproved),
		TerrainID: terrainID,
		Price:     result.Price,
	}, nil
}

// pickTerrain выбирает наименьший номер площадки, не занятый подтверждёнными
// бронированиями, пересекающими интервал iv
func pickTerrain(
	field *domain.Field,
	date time.Time,
	iv availability.Interval,
	reservations []*domain.Reservation,
	excludeID int64,
) (int64, error) {
	used := make(map[int64]bool)

	for _, other := range reservations {
		if other.ID == excludeID || !other.IsApproved() || other.TerrainID == nil {
			continue
		}

		oiv, overlaps, err := availability.Project(field, date, other)
		if err != nil || !overlaps {
			continue
		}

		if oiv.Start < iv.End && oiv.End > iv.Start {
			used[*other.TerrainID] = true
		}
	}

	for t := int64(1); t <= int64(field.TerrainCount); t++ {
		if !used[t] {
			return t, nil
		}
	}

	return 0, ErrNoFreeTerrain
}
