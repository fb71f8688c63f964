package update_reservation_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/api/middleware"
	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	updateReservationTime "github.com/avolkhov/SFP-FieldService/internal/usecase/update_reservation_time"
)

const (
	msgInvalidReservationID = "некорректный идентификатор бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgReservationNotFound  = "бронирование не найдено"
	msgFieldNotFound        = "поле не найдено"
	msgFieldMisconfigured   = "конфигурация поля не позволяет построить расписание"
	msgAccessDenied         = "перенести заявку может её владелец или менеджер клуба"
	msgCannotReschedule     = "бронирование нельзя перенести в текущем статусе"
	msgDurationOutOfRange   = "длительность вне допустимого диапазона поля"
	msgSlotUnavailable      = "выбранный интервал недоступен"
	msgConcurrencyConflict  = "интервал только что заняли, повторите запрос"
	msgUnauthorized         = "не удалось определить пользователя"
)

type Handler struct {
	useCase      UpdateReservationTimeUseCase
	notifyClient NotifyServiceClient
	logger       Logger
}

func NewHandler(useCase UpdateReservationTimeUseCase, notifyClient NotifyServiceClient, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		notifyClient: notifyClient,
		logger:       logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/time-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{reservationId}/time-slot - Invalid reservation ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/%d/time-slot - Missing user ID in context", reservationID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/%d/time-slot - Invalid request body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, userID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/%d/time-slot - Failed to parse date: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservationTime.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservationTime.ErrFieldNotFound):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Field not found", reservationID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, updateReservationTime.ErrFieldMisconfigured):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Field misconfigured", reservationID)
			handlers.RespondUnprocessableEntity(w, msgFieldMisconfigured)

		case errors.Is(err, updateReservationTime.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Access denied for user=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, updateReservationTime.ErrCannotReschedule):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Cannot reschedule: %v", reservationID, err)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, updateReservationTime.ErrDurationOutOfRange):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Duration out of range", reservationID)
			handlers.RespondBadRequest(w, msgDurationOutOfRange)

		case errors.Is(err, updateReservationTime.ErrSlotUnavailable):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Slot unavailable", reservationID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, updateReservationTime.ErrConcurrencyConflict):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Concurrency conflict", reservationID)
			handlers.RespondConflict(w, msgConcurrencyConflict)

		case errors.Is(err, updateReservationTime.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/%d/time-slot - Invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /reservations/%d/time-slot - Failed to reschedule: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Уведомляем клуб о переносе: заявка снова ждёт подтверждения
	h.notifyClient.SendReservationEventAsync(notifyservice.ReservationEvent{
		Type:          notifyservice.EventReservationRescheduled,
		ReservationID: result.ID,
		FieldID:       result.FieldID,
		UserID:        result.UserID,
		Date:          req.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        result.Status,
	})

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
