package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/api/middleware"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations"
	"github.com/avolkhov/SFP-FieldService/internal/service/reservations/models"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgInvalidStatus = "некорректный статус бронирования"
	msgAccessDenied  = "история бронирований доступна только её владельцу"
	msgUnauthorized  = "не удалось определить пользователя"
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

// Handle GET /api/v1/users/{userId}/reservations?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	pathUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil || pathUserID <= 0 {
		h.logger.Warn("GET /users/{userId}/reservations - Invalid user ID: %s", vars["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/%d/reservations - Missing user ID in context", pathUserID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Чужую историю не отдаём
	if pathUserID != authUserID {
		h.logger.Warn("GET /users/%d/reservations - Access denied for user=%d", pathUserID, authUserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetUserReservationsRequest{UserID: pathUserID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/%d/reservations - Invalid status filter: %v", pathUserID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/%d/reservations - Failed to get reservations: %v", pathUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
