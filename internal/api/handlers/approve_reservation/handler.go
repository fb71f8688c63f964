package approve_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/api/middleware"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	approveReservation "github.com/avolkhov/SFP-FieldService/internal/usecase/approve_reservation"
)

const (
	msgInvalidReservationID = "некорректный идентификатор бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgFieldNotFound        = "поле не найдено"
	msgAccessDenied         = "доступ разрешён только менеджерам клуба"
	msgCannotApprove        = "бронирование нельзя подтвердить в текущем статусе"
	msgNoFreeTerrain        = "все площадки на этом интервале уже заняты"
	msgConcurrencyConflict  = "конкурирующее подтверждение, повторите запрос"
	msgUnauthorized         = "не удалось определить пользователя"
)

// ApprovedReservationResponse HTTP response model
type ApprovedReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	FieldID   int64   `json:"fieldId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	TerrainID int64   `json:"terrainId"`
	Price     float64 `json:"price"`
}

type Handler struct {
	useCase      ApproveReservationUseCase
	notifyClient NotifyServiceClient
	logger       Logger
}

func NewHandler(useCase ApproveReservationUseCase, notifyClient NotifyServiceClient, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		notifyClient: notifyClient,
		logger:       logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{reservationId}/approve - Invalid reservation ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/%d/approve - Missing user ID in context", reservationID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%d/approve - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, approveReservation.ErrFieldNotFound):
			h.logger.Warn("PATCH /reservations/%d/approve - Field not found", reservationID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, approveReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/%d/approve - Access denied for user=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, approveReservation.ErrCannotApprove):
			h.logger.Warn("PATCH /reservations/%d/approve - Cannot approve: %v", reservationID, err)
			handlers.RespondConflict(w, msgCannotApprove)

		case errors.Is(err, approveReservation.ErrNoFreeTerrain):
			h.logger.Warn("PATCH /reservations/%d/approve - No free terrain", reservationID)
			handlers.RespondConflict(w, msgNoFreeTerrain)

		case errors.Is(err, approveReservation.ErrConcurrencyConflict):
			h.logger.Warn("PATCH /reservations/%d/approve - Concurrency conflict", reservationID)
			handlers.RespondConflict(w, msgConcurrencyConflict)

		case errors.Is(err, approveReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/%d/approve - Invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("PATCH /reservations/%d/approve - Failed to approve: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Уведомляем владельца заявки о подтверждении
	h.notifyClient.SendReservationEventAsync(notifyservice.ReservationEvent{
		Type:          notifyservice.EventReservationApproved,
		ReservationID: result.ID,
		FieldID:       result.FieldID,
		UserID:        result.UserID,
		Date:          result.Date.Format(domain.DateFormat),
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        result.Status,
	})

	handlers.RespondJSON(w, http.StatusOK, &ApprovedReservationResponse{
		ID:        result.ID,
		UserID:    result.UserID,
		FieldID:   result.FieldID,
		Date:      result.Date.Format(domain.DateFormat),
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    result.Status,
		TerrainID: result.TerrainID,
		Price:     result.Price,
	})
}
