package reject_reservation

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
	msgAccessDenied         = "отклонить заявку может только менеджер клуба"
	msgCannotReject         = "заявку нельзя отклонить в текущем статусе"
	msgUnauthorized         = "не удалось определить пользователя"
)

// RejectRequest HTTP request model
type RejectRequest struct {
	Reason string `json:"reason"`
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

// Handle PATCH /api/v1/reservations/{reservationId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{reservationId}/reject - Invalid reservation ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/%d/reject - Missing user ID in context", reservationID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req RejectRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/%d/reject - Invalid request body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reject(r.Context(), reservationID, &models.RejectReservationRequest{
		UserID: userID,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%d/reject - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrFieldNotFound):
			h.logger.Warn("PATCH /reservations/%d/reject - Field not found", reservationID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/%d/reject - Access denied for user=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrCannotReject):
			h.logger.Warn("PATCH /reservations/%d/reject - Cannot reject: %v", reservationID, err)
			handlers.RespondConflict(w, msgCannotReject)

		default:
			h.logger.Error("PATCH /reservations/%d/reject - Failed to reject: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.notifyClient.SendReservationEventAsync(notifyservice.ReservationEvent{
		Type:          notifyservice.EventReservationRejected,
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
