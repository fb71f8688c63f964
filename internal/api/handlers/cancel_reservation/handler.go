package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/api/middleware"
	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный идентификатор бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "бронирование не найдено"
	msgFieldNotFound        = "поле не найдено"
	msgAccessDenied         = "отменить заявку может её владелец или менеджер клуба"
	msgCannotCancel         = "бронирование нельзя отменить в текущем статусе"
	msgUnauthorized         = "не удалось определить пользователя"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

type Handler struct {
	service      ReservationsService
	notifyClient NotifyServiceClient
	logger       Logger
}

func NewHandler(service ReservationsService, notifyClient NotifyServiceClient, logger Logger) *Handler {
	return &Handler{
		service:      service,
		notifyClient: notifyClient,
		logger:       logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{reservationId}/cancel - Invalid reservation ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/%d/cancel - Missing user ID in context", reservationID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/%d/cancel - Invalid request body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), reservationID, &models.CancelReservationRequest{
		UserID:             userID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%d/cancel - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrFieldNotFound):
			h.logger.Warn("PATCH /reservations/%d/cancel - Field not found", reservationID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/%d/cancel - Access denied for user=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/%d/cancel - Cannot cancel: %v", reservationID, err)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /reservations/%d/cancel - Failed to cancel: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.notifyClient.SendReservationEventAsync(notifyservice.ReservationEvent{
		Type:          notifyservice.EventReservationCancelled,
		ReservationID: result.ID,
		FieldID:       result.FieldID,
		UserID:        result.UserID,
		Date:          result.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        result.Status,
	})

	handlers.RespondJSON(w, http.StatusOK, result)
}
