package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	getAvailableSlots "github.com/avolkhov/SFP-FieldService/internal/usecase/get_available_slots"
)

const (
	msgInvalidFieldID     = "некорректный идентификатор поля"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFieldNotFound      = "поле не найдено"
	msgFieldMisconfigured = "конфигурация поля не позволяет построить расписание"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil || fieldID <= 0 {
		h.logger.Warn("GET /fields/{fieldId}/available-slots - Invalid field ID: %s", vars["fieldId"])
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /fields/%d/available-slots - Invalid date: %s", fieldID, r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		FieldID: fieldID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrFieldNotFound):
			h.logger.Warn("GET /fields/%d/available-slots - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailableSlots.ErrFieldMisconfigured):
			h.logger.Warn("GET /fields/%d/available-slots - Field misconfigured", fieldID)
			handlers.RespondUnprocessableEntity(w, msgFieldMisconfigured)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /fields/%d/available-slots - Invalid input: %v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidFieldID)

		default:
			h.logger.Error("GET /fields/%d/available-slots - Failed to get slots: %v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
