package get_club_fields

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
)

const (
	msgInvalidClubID = "некорректный идентификатор клуба"
)

type Handler struct {
	service FieldsService
	logger  Logger
}

func NewHandler(service FieldsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clubs/{clubId}/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clubID, err := strconv.ParseInt(vars["clubId"], 10, 64)
	if err != nil || clubID <= 0 {
		h.logger.Warn("GET /clubs/{clubId}/fields - Invalid club ID: %s", vars["clubId"])
		handlers.RespondBadRequest(w, msgInvalidClubID)
		return
	}

	result, err := h.service.GetByClub(r.Context(), clubID)
	if err != nil {
		h.logger.Error("GET /clubs/%d/fields - Failed to get fields: %v", clubID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
