package get_field_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	fieldsService "github.com/avolkhov/SFP-FieldService/internal/service/fields"
)

const (
	msgInvalidFieldID = "некорректный идентификатор поля"
	msgFieldNotFound  = "поле не найдено"
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

// Handle GET /api/v1/fields/{fieldId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil || fieldID <= 0 {
		h.logger.Warn("GET /fields/{fieldId}/config - Invalid field ID: %s", vars["fieldId"])
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	result, err := h.service.GetByID(r.Context(), fieldID)
	if err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrFieldNotFound):
			h.logger.Warn("GET /fields/%d/config - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		default:
			h.logger.Error("GET /fields/%d/config - Failed to get field: %v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
