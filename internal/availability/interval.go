package availability

import "github.com/avolkhov/SFP-FieldService/pkg/timeutil"

// AlignInterval переносит интервал запроса на ось таймлайна и проверяет,
// что он целиком лежит в часах работы поля. Правило переноса то же, что и
// для бронирований: конец не позже начала означает переход через полночь,
// начало раньше открытия на поле с ночным окном относится к участку после
// полуночи.
func (t *Timeline) AlignInterval(start, end int) (Interval, bool) {
	end = timeutil.NormalizeEnd(start, end)
	duration := end - start

	if start < t.Opening {
		start += timeutil.MinutesPerDay
		end = start + duration
	}

	iv := Interval{Start: start, End: end}
	if start < t.Opening || end > t.Closing {
		return iv, false
	}
	return iv, true
}

// CoveredByFreeSlot проверяет, что интервал целиком помещается в один из
// свободных слотов фиксированной длительности
func (t *Timeline) CoveredByFreeSlot(iv Interval, fixedSlotMinutes int) bool {
	for _, slot := range t.FreeSlotIntervals(fixedSlotMinutes) {
		if slot.Contains(iv) {
			return true
		}
	}
	return false
}
