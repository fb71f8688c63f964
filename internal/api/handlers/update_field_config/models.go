package update_field_config

import (
	"github.com/avolkhov/SFP-FieldService/internal/service/fields/models"
)

// UpdateFieldConfigRequest HTTP request model. Все поля опциональны:
// передаются только изменяемые параметры.
type UpdateFieldConfigRequest struct {
	Name             *string  `json:"name,omitempty"`
	OpeningTime      *string  `json:"openingTime,omitempty"` // "HH:MM"
	ClosingTime      *string  `json:"closingTime,omitempty"` // "HH:MM"
	TerrainCount     *int     `json:"terrainCount,omitempty"`
	MinSlotMinutes   *int     `json:"minSlotMinutes,omitempty"`
	FixedSlotMinutes *int     `json:"fixedSlotMinutes,omitempty"`
	PricePerHour     *float64 `json:"pricePerHour,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateFieldConfigRequest) ToServiceRequest(userID int64) *models.UpdateFieldConfigRequest {
	return &models.UpdateFieldConfigRequest{
		UserID:           userID,
		Name:             r.Name,
		OpeningTime:      r.OpeningTime,
		ClosingTime:      r.ClosingTime,
		TerrainCount:     r.TerrainCount,
		MinSlotMinutes:   r.MinSlotMinutes,
		FixedSlotMinutes: r.FixedSlotMinutes,
		PricePerHour:     r.PricePerHour,
	}
}
