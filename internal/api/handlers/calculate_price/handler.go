package calculate_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	calculatePrice "github.com/avolkhov/SFP-FieldService/internal/usecase/calculate_price"
)

const (
	msgInvalidFieldID     = "некорректный идентификатор поля"
	msgInvalidDuration    = "некорректная длительность, ожидается положительное число минут"
	msgDurationOutOfRange = "длительность вне допустимого диапазона поля"
	msgFieldNotFound      = "поле не найдено"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	FieldID         int64   `json:"fieldId"`
	DurationMinutes int     `json:"durationMinutes"`
	PricePerHour    float64 `json:"pricePerHour"`
	Price           float64 `json:"price"`
}

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/price?durationMinutes=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil || fieldID <= 0 {
		h.logger.Warn("GET /fields/{fieldId}/price - Invalid field ID: %s", vars["fieldId"])
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	duration, err := strconv.Atoi(r.URL.Query().Get("durationMinutes"))
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /fields/%d/price - Invalid duration: %s", fieldID, r.URL.Query().Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &calculatePrice.Request{
		FieldID:         fieldID,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrFieldNotFound):
			h.logger.Warn("GET /fields/%d/price - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, calculatePrice.ErrDurationOutOfRange):
			h.logger.Warn("GET /fields/%d/price - Duration out of range: %d", fieldID, duration)
			handlers.RespondBadRequest(w, msgDurationOutOfRange)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("GET /fields/%d/price - Invalid input: %v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /fields/%d/price - Failed to calculate price: %v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PriceResponse{
		FieldID:         result.FieldID,
		DurationMinutes: result.DurationMinutes,
		PricePerHour:    result.PricePerHour,
		Price:           result.Price,
	})
}
