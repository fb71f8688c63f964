package availability

import (
	"time"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

// Interval полуоткрытый интервал [Start, End) в минутах на оси таймлайна
type Interval struct {
	Start int
	End   int
}

// Duration длительность интервала в минутах
func (i Interval) Duration() int {
	return i.End - i.Start
}

// Contains проверяет, что other целиком лежит внутри интервала
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && i.End >= other.End
}

// FreeSlotIntervals возвращает свободные слоты фиксированной длительности.
// Минута свободна, если число подтверждённых бронирований меньше количества
// площадок. Непрерывные свободные окна нарезаются на целые куски по
// fixedSlotMinutes; неполный остаток окна слотом не становится, даже если
// он длиннее минимальной длительности бронирования.
func (t *Timeline) FreeSlotIntervals(fixedSlotMinutes int) []Interval {
	windows := t.scanWindows(func(i int) bool {
		return t.Approved[i] < t.TerrainCount
	})

	slots := make([]Interval, 0)
	for _, w := range windows {
		for start := w.Start; start+fixedSlotMinutes <= w.End; start += fixedSlotMinutes {
			slots = append(slots, Interval{Start: start, End: start + fixedSlotMinutes})
		}
	}
	return slots
}

// PendingSlotIntervals возвращает спорные интервалы: ёмкость поля выбрана
// полностью, но не все заявки подтверждены. Окна нарезаются на куски не
// длиннее fixedSlotMinutes, остаток короче minSlotMinutes отбрасывается.
// Куски, в которых спор уже полностью разрешён (каждая минута подтверждена
// целиком), отфильтровываются.
func (t *Timeline) PendingSlotIntervals(fixedSlotMinutes, minSlotMinutes int) []Interval {
	windows := t.scanWindows(func(i int) bool {
		return t.Total[i] >= t.TerrainCount && t.Approved[i] < t.Total[i]
	})

	slots := make([]Interval, 0)
	for _, w := range windows {
		for start := w.Start; start < w.End; start += fixedSlotMinutes {
			end := start + fixedSlotMinutes
			if end > w.End {
				end = w.End
			}
			chunk := Interval{Start: start, End: end}
			if chunk.Duration() < minSlotMinutes {
				continue
			}
			if t.fullyApproved(chunk) {
				continue
			}
			slots = append(slots, chunk)
		}
	}
	return slots
}

// scanWindows собирает непрерывные окна минут, удовлетворяющих предикату.
// Окно, открытое на момент конца сканирования, закрывается границей Closing.
func (t *Timeline) scanWindows(pred func(i int) bool) []Interval {
	windows := make([]Interval, 0)
	open := false
	var start int

	for i := 0; i < len(t.Total); i++ {
		switch {
		case pred(i) && !open:
			open = true
			start = t.Opening + i
		case !pred(i) && open:
			open = false
			windows = append(windows, Interval{Start: start, End: t.Opening + i})
		}
	}

	if open {
		windows = append(windows, Interval{Start: start, End: t.Closing})
	}

	return windows
}

// fullyApproved проверяет, что на каждой минуте интервала все активные
// бронирования подтверждены
func (t *Timeline) fullyApproved(iv Interval) bool {
	for i := iv.Start - t.Opening; i < iv.End-t.Opening; i++ {
		if t.Approved[i] < t.Total[i] {
			return false
		}
	}
	return true
}

// FreeSlots конвертирует свободные интервалы в слоты с календарной датой.
// Слот, начинающийся после 1440-й минуты, относится к следующему дню.
func (t *Timeline) FreeSlots(date time.Time, fixedSlotMinutes int) []domain.TimeSlot {
	intervals := t.FreeSlotIntervals(fixedSlotMinutes)
	slots := make([]domain.TimeSlot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, domain.TimeSlot{
			Date:      slotDate(date, iv.Start),
			StartTime: timeutil.ToTime(iv.Start),
			EndTime:   timeutil.ToTime(iv.End),
		})
	}
	return slots
}

// PendingSlots конвертирует спорные интервалы в слоты с комментарием
func (t *Timeline) PendingSlots(date time.Time, fixedSlotMinutes, minSlotMinutes int, comment string) []domain.PendingSlot {
	intervals := t.PendingSlotIntervals(fixedSlotMinutes, minSlotMinutes)
	slots := make([]domain.PendingSlot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, domain.PendingSlot{
			Date:      slotDate(date, iv.Start),
			StartTime: timeutil.ToTime(iv.Start),
			EndTime:   timeutil.ToTime(iv.End),
			Comment:   comment,
		})
	}
	return slots
}

// slotDate определяет календарный день слота по смещению его начала
func slotDate(date time.Time, start int) time.Time {
	if start >= timeutil.MinutesPerDay {
		return date.AddDate(0, 0, 1)
	}
	return date
}
