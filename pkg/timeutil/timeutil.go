package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay количество минут в сутках, используется для переноса
// интервалов через полночь
const MinutesPerDay = 1440

var (
	// ErrInvalidTimeFormat возвращается при некорректной строке времени
	ErrInvalidTimeFormat = errors.New("timeutil: invalid time format")
)

// ToMinutes парсит строку времени "HH:MM" или "HH:MM:SS" в минуты от начала суток.
// Часы проверяются на диапазон 0-23, минуты на 0-59.
func ToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hours*60 + minutes, nil
}

// ToTime форматирует минуты от начала суток обратно в строку "HH:MM".
// Значение предварительно нормализуется по модулю суток, результат
// всегда лежит в [00:00, 24:00).
func ToTime(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// NormalizeEnd применяет правило переноса через полночь: если конец
// интервала не позже начала, он относится к следующим суткам.
func NormalizeEnd(start, end int) int {
	if end <= start {
		return end + MinutesPerDay
	}
	return end
}

// Duration возвращает длительность интервала в минутах с учётом
// переноса через полночь.
func Duration(start, end int) int {
	return NormalizeEnd(start, end) - start
}
