package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	reservationRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/reservation"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations/models"
)

// Service сервис для чтения и завершения бронирований. Операции, требующие
// проверки доступности (создание, подтверждение, перенос), живут в
// отдельных use case: отмена и отклонение только освобождают ёмкость.
type Service struct {
	reservationRepo ReservationRepository
	fieldRepo       FieldRepository
	clubClient      ClubServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	fieldRepo FieldRepository,
	clubClient ClubServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		fieldRepo:       fieldRepo,
		clubClient:      clubClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование или любое, если он менеджер
// клуба, владеющего полем
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetFieldReservations получает бронирования поля с фильтрацией по периоду
// и статусу. Доступно только менеджерам клуба, владеющего полем.
func (s *Service) GetFieldReservations(ctx context.Context, req *models.GetFieldReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetFieldReservations: fetching reservations for field=%d, user=%d", req.FieldID, req.UserID)

	field, err := s.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("GetFieldReservations: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetFieldReservations: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldReservations - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, field.ClubID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFieldReservations: invalid filter for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByFieldWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFieldReservations: repository error for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFieldReservations: successfully fetched %d reservations for field=%d", len(reservations), req.FieldID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование, менеджер клуба -
// любое бронирование на полях клуба
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return nil, ErrCannotCancel
	}

	if reservation.UserID != req.UserID {
		if err := s.checkReservationManagerAccess(ctx, reservation, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
			return nil, ErrAccessDenied
		}
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, domain.StatusCancelled, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	updated, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		s.logger.Error("Cancel: failed to re-read reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return models.FromDomainReservation(updated), nil
}

// Reject отклоняет заявку на бронирование
// Доступно только менеджерам клуба; отклонить можно заявку, ещё не
// получившую решения
func (s *Service) Reject(ctx context.Context, reservationID int64, req *models.RejectReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Reject: rejecting reservation id=%d by user=%d", reservationID, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Reject: reservation id=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Reject: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeApproved() {
		s.logger.Warn("Reject: reservation id=%d cannot be rejected, status=%s", reservationID, reservation.Status)
		return nil, ErrCannotReject
	}

	if err := s.checkReservationManagerAccess(ctx, reservation, req.UserID); err != nil {
		s.logger.Warn("Reject: access denied for user=%d to reject reservation id=%d", req.UserID, reservationID)
		return nil, ErrAccessDenied
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, domain.StatusRejected, req.Reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Reject: reservation id=%d not found during rejection", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Reject: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	updated, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		s.logger.Error("Reject: failed to re-read reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reject: successfully rejected reservation id=%d", reservationID)
	return models.FromDomainReservation(updated), nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
func (s *Service) checkUserAccess(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	if reservation.UserID == userID {
		return nil
	}

	if err := s.checkReservationManagerAccess(ctx, reservation, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkReservationManagerAccess проверяет, что пользователь - менеджер клуба,
// владеющего полем бронирования
func (s *Service) checkReservationManagerAccess(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	field, err := s.fieldRepo.GetByID(ctx, reservation.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("checkReservationManagerAccess: field id=%d not found", reservation.FieldID)
			return ErrFieldNotFound
		}
		s.logger.Error("checkReservationManagerAccess: failed to get field id=%d: %v", reservation.FieldID, err)
		return fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	return s.checkManagerAccess(ctx, field.ClubID, userID)
}

// checkManagerAccess проверяет, что пользователь является менеджером клуба
func (s *Service) checkManagerAccess(ctx context.Context, clubID int64, userID int64) error {
	isManager, err := s.clubClient.IsManager(ctx, clubID, userID)
	if err != nil {
		s.logger.Error("checkManagerAccess: failed to check manager rights for club=%d: %v", clubID, err)
		return fmt.Errorf("%w: failed to check manager rights: %v", ErrInternal, err)
	}

	if !isManager {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of club=%d", userID, clubID)
		return ErrAccessDenied
	}

	return nil
}
