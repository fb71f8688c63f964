package availability

import (
	"fmt"
	"time"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
	"github.com/avolkhov/SFP-FieldService/pkg/timeutil"
)

// Timeline поминутная картина занятости поля на одну дату.
// Два параллельных счётчика: Total учитывает все активные бронирования
// (pending, waiting, approved), Approved - только подтверждённые.
// PENDING/WAITING заявки резервируют ёмкость, чтобы новые клиенты не
// перебронировали слот, но ещё не считаются гарантированной занятостью.
//
// Таймлайн эфемерный: строится заново на каждый запрос, никогда не
// кэшируется и не сохраняется.
type Timeline struct {
	Opening      int // нормализованное начало окна, минуты от начала суток
	Closing      int // нормализованный конец окна, всегда > Opening, может быть > 1440
	TerrainCount int

	Approved []int // occupancy подтверждённых бронирований по минутам
	Total    []int // occupancy всех активных бронирований по минутам
}

// Build строит таймлайн поля на дату date из переданных бронирований.
// reservations должны содержать строки на date и на date+1: бронирования,
// записанные на следующий календарный день, могут занимать хвост окна
// поля, работающего за полночь. excludeID исключает бронирование из
// подсчёта (используется при переносе существующего бронирования).
func Build(field *domain.Field, date time.Time, reservations []*domain.Reservation, excludeID int64) (*Timeline, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}

	opening, closing := field.Hours()
	length := closing - opening

	tl := &Timeline{
		Opening:      opening,
		Closing:      closing,
		TerrainCount: field.TerrainCount,
		Approved:     make([]int, length),
		Total:        make([]int, length),
	}

	for _, res := range reservations {
		if excludeID != 0 && res.ID == excludeID {
			continue
		}
		if !res.IsActive() {
			continue
		}

		iv, overlaps, err := Project(field, date, res)
		if err != nil {
			return nil, err
		}
		if !overlaps {
			continue
		}

		for i := iv.Start - opening; i < iv.End-opening; i++ {
			tl.Total[i]++
			if res.IsApproved() {
				tl.Approved[i]++
			}
		}
	}

	return tl, nil
}

// Project проецирует бронирование на ось таймлайна даты date и клиппит
// его к окну работы поля. Возвращает overlaps=false, если интервал не
// пересекает окно. Правила проекции:
//   - бронирование, записанное на следующий день, сдвигается на сутки вперёд;
//   - конец не позже начала означает переход через полночь;
//   - на поле с ночным окном начало раньше открытия относится к участку
//     после полуночи.
func Project(field *domain.Field, date time.Time, res *domain.Reservation) (Interval, bool, error) {
	opening, closing := field.Hours()

	start, err := timeutil.ToMinutes(res.StartTime)
	if err != nil {
		return Interval{}, false, fmt.Errorf("reservation id=%d: %w", res.ID, err)
	}
	end, err := timeutil.ToMinutes(res.EndTime)
	if err != nil {
		return Interval{}, false, fmt.Errorf("reservation id=%d: %w", res.ID, err)
	}

	if sameDay(res.Date, date.AddDate(0, 0, 1)) {
		start += timeutil.MinutesPerDay
		end += timeutil.MinutesPerDay
	}

	end = timeutil.NormalizeEnd(start, end)

	if field.WrapsPastMidnight() && start < opening {
		start += timeutil.MinutesPerDay
		end = timeutil.NormalizeEnd(start, end)
	}

	if end <= opening || start >= closing {
		return Interval{}, false, nil
	}

	if start < opening {
		start = opening
	}
	if end > closing {
		end = closing
	}

	return Interval{Start: start, End: end}, true, nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
