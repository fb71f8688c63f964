package get_field_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/api/middleware"
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations/models"
)

const (
	msgInvalidFieldID = "некорректный идентификатор поля"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter  = "некорректные параметры фильтра"
	msgFieldNotFound  = "поле не найдено"
	msgAccessDenied   = "бронирования поля доступны только менеджерам клуба"
	msgUnauthorized   = "не удалось определить пользователя"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/reservations?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil || fieldID <= 0 {
		h.logger.Warn("GET /fields/{fieldId}/reservations - Invalid field ID: %s", vars["fieldId"])
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /fields/%d/reservations - Missing user ID in context", fieldID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	req, err := parseRequest(r, fieldID, userID)
	if err != nil {
		h.logger.Warn("GET /fields/%d/reservations - Invalid query params: %v", fieldID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetFieldReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrFieldNotFound):
			h.logger.Warn("GET /fields/%d/reservations - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /fields/%d/reservations - Access denied for user=%d", fieldID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /fields/%d/reservations - Invalid filter: %v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /fields/%d/reservations - Failed to get reservations: %v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseRequest собирает фильтр из query-параметров
func parseRequest(r *http.Request, fieldID, userID int64) (*models.GetFieldReservationsRequest, error) {
	query := r.URL.Query()

	req := &models.GetFieldReservationsRequest{
		UserID:  userID,
		FieldID: fieldID,
	}

	if startDate := query.Get("startDate"); startDate != "" {
		parsed, err := time.Parse(domain.DateFormat, startDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &parsed
	}

	if endDate := query.Get("endDate"); endDate != "" {
		parsed, err := time.Parse(domain.DateFormat, endDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeInactive := query.Get("includeInactive"); includeInactive != "" {
		parsed, err := strconv.ParseBool(includeInactive)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = parsed
	}

	return req, nil
}
