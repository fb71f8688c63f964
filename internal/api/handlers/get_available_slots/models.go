package get_available_slots

import (
	"github.com/avolkhov/SFP-FieldService/internal/domain"
	getAvailableSlots "github.com/avolkhov/SFP-FieldService/internal/usecase/get_available_slots"
)

// SlotResponse свободный слот фиксированной длительности
type SlotResponse struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
}

// PendingSlotResponse спорное окно, ожидающее решения по заявкам
type PendingSlotResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Comment   string `json:"comment"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	FieldID      int64                 `json:"fieldId"`
	Date         string                `json:"date"`
	FreeSlots    []SlotResponse        `json:"freeSlots"`
	PendingSlots []PendingSlotResponse `json:"pendingSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		FieldID:      resp.FieldID,
		Date:         resp.Date.Format(domain.DateFormat),
		FreeSlots:    make([]SlotResponse, 0, len(resp.FreeSlots)),
		PendingSlots: make([]PendingSlotResponse, 0, len(resp.PendingSlots)),
	}

	for _, slot := range resp.FreeSlots {
		out.FreeSlots = append(out.FreeSlots, SlotResponse{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	for _, slot := range resp.PendingSlots {
		out.PendingSlots = append(out.PendingSlots, PendingSlotResponse{
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Comment:   slot.Comment,
		})
	}

	return out
}
