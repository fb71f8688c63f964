package update_field_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avolkhov/SFP-FieldService/internal/api/handlers"
	"github.com/avolkhov/SFP-FieldService/internal/api/middleware"
	fieldsService "github.com/avolkhov/SFP-FieldService/internal/service/fields"
)

const (
	msgInvalidFieldID     = "некорректный идентификатор поля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFieldNotFound      = "поле не найдено"
	msgAccessDenied       = "доступ разрешён только менеджерам клуба"
	msgEmptyUpdate        = "запрос не содержит изменяемых параметров"
	msgUnauthorized       = "не удалось определить пользователя"
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

// Handle PUT /api/v1/fields/{fieldId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fieldID, err := strconv.ParseInt(vars["fieldId"], 10, 64)
	if err != nil || fieldID <= 0 {
		h.logger.Warn("PUT /fields/{fieldId}/config - Invalid field ID: %s", vars["fieldId"])
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /fields/%d/config - Missing user ID in context", fieldID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpdateFieldConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /fields/%d/config - Invalid request body: %v", fieldID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateConfig(r.Context(), fieldID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, fieldsService.ErrFieldNotFound):
			h.logger.Warn("PUT /fields/%d/config - Field not found", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, fieldsService.ErrAccessDenied):
			h.logger.Warn("PUT /fields/%d/config - Access denied for user=%d", fieldID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, fieldsService.ErrEmptyUpdate):
			h.logger.Warn("PUT /fields/%d/config - Empty update", fieldID)
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		case errors.Is(err, fieldsService.ErrInvalidInput):
			h.logger.Warn("PUT /fields/%d/config - Invalid input: %v", fieldID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /fields/%d/config - Failed to update config: %v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
