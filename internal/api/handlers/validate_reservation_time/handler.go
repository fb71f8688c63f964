package validate_reservation_time

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	validateReservationTime "github.com/avolkhov/SFP-FieldService/internal/usecase/validate_reservation_time"
)

const (
	msgInvalidFieldID     = "некорректный идентификатор поля"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgFieldNotFound      = "поле не найдено"
	msgFieldMisconfigured = "конфигурация поля не позволяет построить расписание"
)

// ValidationResponse HTTP response model
type ValidationResponse struct {
	Valid bool `json:"valid"`
}

type Handler struct {
	useCase ValidateReservationTimeUseCase
	logger  Logger
}

func NewHandler(useCase ValidateReservationTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/validate-reservation-time?date=&startTime=&endTime=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil || fieldID <= 0 {
		h.logger.Warn("GET /fields/{fieldId}/validate-reservation-time - Invalid field ID: %s", vars["fieldId"])
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /fields/%d/validate-reservation-time - Invalid date: %s", fieldID, query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &validateReservationTime.Request{
		FieldID:   fieldID,
		Date:      date,
		StartTime: query.Get("startTime"),
		EndTime:   query.Get("endTime"),
	})
	if err != nil {
		switch {
		case errors.Is(err, validateReservationTime.ErrFieldNotFound):
			h.logger.Warn("GET /fields/%d/validate-reservation-time - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, validateReservationTime.ErrFieldMisconfigured):
			h.logger.Warn("GET /fields/%d/validate-reservation-time - Field misconfigured", fieldID)
			handlers.RespondUnprocessableEntity(w, msgFieldMisconfigured)

		case errors.Is(err, validateReservationTime.ErrInvalidInput):
			h.logger.Warn("GET /fields/%d/validate-reservation-time - Invalid input: %v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /fields/%d/validate-reservation-time - Failed to validate: %v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ValidationResponse{Valid: result.Valid})
}
