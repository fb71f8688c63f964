package create_reservation

import (
	"errors"
	"net/http"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/api/middleware"
	"github.com/avolkhov/SFP-FieldService/internal/integrations/notifyservice"
	createReservation "github.com/avolkhov/SFP-FieldService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFieldNotFound       = "поле не найдено"
	msgFieldMisconfigured  = "конфигурация поля не позволяет построить расписание"
	msgDurationOutOfRange  = "длительность вне допустимого диапазона поля"
	msgSlotUnavailable     = "выбранный интервал недоступен"
	msgConcurrencyConflict = "интервал только что заняли, повторите запрос"
	msgUnauthorized        = "не удалось определить пользователя"
)

type Handler struct {
	useCase      CreateReservationUseCase
	notifyClient NotifyServiceClient
	logger       Logger
}

func NewHandler(useCase CreateReservationUseCase, notifyClient NotifyServiceClient, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		notifyClient: notifyClient,
		logger:       logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: user=%d, field=%d", userID, req.FieldID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrConcurrencyConflict):
			h.logger.Warn("POST /reservations - Concurrency conflict: user=%d, field=%d", userID, req.FieldID)
			handlers.RespondConflict(w, msgConcurrencyConflict)

		case errors.Is(err, createReservation.ErrFieldNotFound):
			h.logger.Warn("POST /reservations - Field not found: field=%d", req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, createReservation.ErrFieldMisconfigured):
			h.logger.Warn("POST /reservations - Field misconfigured: field=%d", req.FieldID)
			handlers.RespondUnprocessableEntity(w, msgFieldMisconfigured)

		case errors.Is(err, createReservation.ErrDurationOutOfRange):
			h.logger.Warn("POST /reservations - Duration out of range: user=%d, field=%d", userID, req.FieldID)
			handlers.RespondBadRequest(w, msgDurationOutOfRange)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user=%d, field=%d, error=%v",
				userID, req.FieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Уведомление клуба о новой заявке не влияет на результат запроса
	h.notifyClient.SendReservationEventAsync(notifyservice.ReservationEvent{
		Type:          notifyservice.EventReservationCreated,
		ReservationID: result.ID,
		FieldID:       result.FieldID,
		UserID:        result.UserID,
		Date:          req.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        result.Status,
	})

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
