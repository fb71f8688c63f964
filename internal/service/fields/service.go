package fields

import (
	"context"
	"errors"
	"fmt"

	fieldRepo "github.com/avolkhov/SFP-FieldService/internal/infra/storage/field"
	"github.com/avolkhov/SFP-FieldService/internal/service/fields/models"
)

// Service сервис для работы с конфигурацией полей
type Service struct {
	fieldRepo  FieldRepository
	clubClient ClubServiceClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса полей
func NewService(fieldRepo FieldRepository, clubClient ClubServiceClient, logger Logger) *Service {
	return &Service{
		fieldRepo:  fieldRepo,
		clubClient: clubClient,
		logger:     logger,
	}
}

// GetByID получает конфигурацию поля. Конфигурация публична: клиенты
// используют её, чтобы показать часы работы и ставку.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FieldResponse, error) {
	s.logger.Info("GetByID: fetching field id=%d", id)

	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("GetByID: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetByID: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainField(field), nil
}

// GetByClub получает список полей клуба
func (s *Service) GetByClub(ctx context.Context, clubID int64) (*models.FieldListResponse, error) {
	s.logger.Info("GetByClub: fetching fields for club=%d", clubID)

	fields, err := s.fieldRepo.GetByClub(ctx, clubID)
	if err != nil {
		s.logger.Error("GetByClub: repository error for club=%d: %v", clubID, err)
		return nil, fmt.Errorf("%w: GetByClub - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByClub: successfully fetched %d fields for club=%d", len(fields), clubID)
	return models.FromDomainFieldList(fields), nil
}

// UpdateConfig частично обновляет конфигурацию поля
// Доступно только менеджерам клуба, владеющего полем
func (s *Service) UpdateConfig(ctx context.Context, fieldID int64, req *models.UpdateFieldConfigRequest) (*models.FieldResponse, error) {
	s.logger.Info("UpdateConfig: updating field id=%d by user=%d", fieldID, req.UserID)

	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("UpdateConfig: field id=%d not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("UpdateConfig: repository error for field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, field.ClubID, req.UserID); err != nil {
		return nil, err
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("UpdateConfig: invalid update for field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if update.IsEmpty() {
		s.logger.Warn("UpdateConfig: empty update for field id=%d", fieldID)
		return nil, ErrEmptyUpdate
	}

	if err := s.fieldRepo.UpdateConfig(ctx, fieldID, update); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("UpdateConfig: field id=%d not found during update", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("UpdateConfig: repository error for field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	updated, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		s.logger.Error("UpdateConfig: failed to reload field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - failed to reload field: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: successfully updated field id=%d", fieldID)
	return models.FromDomainField(updated), nil
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
