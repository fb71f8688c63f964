package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkhov/SFP-FieldService/internal/domain"
)

func TestFreeSlots_EmptyFieldTilesWindow(t *testing.T) {
	tl, err := Build(testField(), testDate(), nil, 0)
	require.NoError(t, err)

	slots := tl.FreeSlots(testDate(), 90)

	// 08:00-22:00 = 840 минут → 9 целых слотов по 90, остаток 30 минут
	// слотом не становится
	expected := []struct{ start, end string }{
		{"08:00", "09:30"},
		{"09:30", "11:00"},
		{"11:00", "12:30"},
		{"12:30", "14:00"},
		{"14:00", "15:30"},
		{"15:30", "17:00"},
		{"17:00", "18:30"},
		{"18:30", "20:00"},
		{"20:00", "21:30"},
	}
	require.Len(t, slots, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.start, slots[i].StartTime)
		assert.Equal(t, e.end, slots[i].EndTime)
		assert.True(t, slots[i].Date.Equal(testDate()))
	}

	pending := tl.PendingSlots(testDate(), 90, 75, domain.PendingSlotComment)
	assert.Empty(t, pending)
}

func TestFreeSlots_ShiftAfterApprovedReservation(t *testing.T) {
	res := []*domain.Reservation{
		reservation(1, testDate(), "08:00", "09:15", domain.StatusApproved),
	}
	tl, err := Build(testField(), testDate(), res, 0)
	require.NoError(t, err)

	slots := tl.FreeSlots(testDate(), 90)

	// Свободное окно [09:15, 22:00) = 765 минут → 8 целых слотов по 90,
	// остаток 45 минут не становится слотом
	expected := []struct{ start, end string }{
		{"09:15", "10:45"},
		{"10:45", "12:15"},
		{"12:15", "13:45"},
		{"13:45", "15:15"},
		{"15:15", "16:45"},
		{"16:45", "18:15"},
		{"18:15", "19:45"},
		{"19:45", "21:15"},
	}
	require.Len(t, slots, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.start, slots[i].StartTime)
		assert.Equal(t, e.end, slots[i].EndTime)
	}
}

func TestPendingSlots_ContestedMinuteAlsoFree(t *testing.T) {
	// Две площадки: одна заявка подтверждена, вторая ждёт решения.
	// Минута одновременно свободна (approved=1 < 2) и спорна
	// (total=2 >= 2, approved < total).
	f := testField()
	f.TerrainCount = 2
	res := []*domain.Reservation{
		reservation(1, testDate(), "10:00", "11:15", domain.StatusPending),
		reservation(2, testDate(), "10:00", "11:15", domain.StatusApproved),
	}

	tl, err := Build(f, testDate(), res, 0)
	require.NoError(t, err)

	// Свободные слоты не сузились: ёмкость по подтверждённым не выбрана
	free := tl.FreeSlotIntervals(90)
	require.NotEmpty(t, free)
	assert.Equal(t, 480, free[0].Start)
	assert.Len(t, free, 9)

	// И одновременно интервал отображается как спорный
	pending := tl.PendingSlots(testDate(), 90, 75, domain.PendingSlotComment)
	require.Len(t, pending, 1)
	assert.Equal(t, "10:00", pending[0].StartTime)
	assert.Equal(t, "11:15", pending[0].EndTime)
	assert.Equal(t, domain.PendingSlotComment, pending[0].Comment)
}

func TestPendingSlots_ShortRemainderDropped(t *testing.T) {
	// Спорное окно 10:00-12:00 (120 минут): первый кусок 90 минут,
	// остаток 30 < 75 отбрасывается
	res := []*domain.Reservation{
		reservation(1, testDate(), "10:00", "12:00", domain.StatusPending),
	}
	tl, err := Build(testField(), testDate(), res, 0)
	require.NoError(t, err)

	pending := tl.PendingSlotIntervals(90, 75)
	require.Len(t, pending, 1)
	assert.Equal(t, 600, pending[0].Start)
	assert.Equal(t, 690, pending[0].End)
}

func TestPendingSlots_FullyApprovedNotReported(t *testing.T) {
	// Единственная заявка подтверждена: ёмкость выбрана, но спора нет
	res := []*domain.Reservation{
		reservation(1, testDate(), "10:00", "11:30", domain.StatusApproved),
	}
	tl, err := Build(testField(), testDate(), res, 0)
	require.NoError(t, err)

	assert.Empty(t, tl.PendingSlotIntervals(90, 75))
}

func TestFreeSlots_OvernightSlotDatedNextDay(t *testing.T) {
	// Поле 20:00-02:00: окно 360 минут → 4 слота, последний начинается
	// в 23:00 этого дня, а слот 00:30 не существует (остаток 0); слоты,
	// начинающиеся после полуночи, датируются следующим днём
	tl, err := Build(overnightField(), testDate(), nil, 0)
	require.NoError(t, err)

	slots := tl.FreeSlots(testDate(), 90)
	expected := []struct {
		start, end string
		nextDay    bool
	}{
		{"20:00", "21:30", false},
		{"21:30", "23:00", false},
		{"23:00", "00:30", false},
		{"00:30", "02:00", true},
	}
	require.Len(t, slots, len(expected))
	nextDay := testDate().AddDate(0, 0, 1)
	for i, e := range expected {
		assert.Equal(t, e.start, slots[i].StartTime)
		assert.Equal(t, e.end, slots[i].EndTime)
		if e.nextDay {
			assert.True(t, slots[i].Date.Equal(nextDay), "slot %d", i)
		} else {
			assert.True(t, slots[i].Date.Equal(testDate()), "slot %d", i)
		}
	}
}

func TestScanWindows_FlushAtClosing(t *testing.T) {
	// Окно, открытое в конце сканирования, закрывается границей Closing
	res := []*domain.Reservation{
		reservation(1, testDate(), "08:00", "20:30", domain.StatusApproved),
	}
	tl, err := Build(testField(), testDate(), res, 0)
	require.NoError(t, err)

	free := tl.FreeSlotIntervals(90)
	// Свободное окно [20:30, 22:00) = 90 минут → ровно один слот
	require.Len(t, free, 1)
	assert.Equal(t, 1230, free[0].Start)
	assert.Equal(t, 1320, free[0].End)
}

func TestAlignInterval(t *testing.T) {
	tl, err := Build(testField(), testDate(), nil, 0)
	require.NoError(t, err)

	// Интервал в часах работы
	iv, ok := tl.AlignInterval(600, 690)
	assert.True(t, ok)
	assert.Equal(t, Interval{Start: 600, End: 690}, iv)

	// Выход за закрытие
	_, ok = tl.AlignInterval(1290, 1380)
	assert.False(t, ok)

	// До открытия: сдвиг на сутки уводит за окно
	_, ok = tl.AlignInterval(360, 435)
	assert.False(t, ok)
}

func TestAlignInterval_Overnight(t *testing.T) {
	tl, err := Build(overnightField(), testDate(), nil, 0)
	require.NoError(t, err)

	// 23:00-00:15 переходит полночь и остаётся в окне
	iv, ok := tl.AlignInterval(1380, 15)
	assert.True(t, ok)
	assert.Equal(t, Interval{Start: 1380, End: 1455}, iv)

	// 00:30-01:45: начало раньше открытия сдвигается на сутки
	iv, ok = tl.AlignInterval(30, 105)
	assert.True(t, ok)
	assert.Equal(t, Interval{Start: 1470, End: 1545}, iv)
}

func TestCoveredByFreeSlot(t *testing.T) {
	tl, err := Build(testField(), testDate(), nil, 0)
	require.NoError(t, err)

	// Произвольный 75-минутный интервал внутри слота 08:00-09:30
	assert.True(t, tl.CoveredByFreeSlot(Interval{Start: 480, End: 555}, 90))
	// Интервал, пересекающий границу двух слотов, не покрыт одним слотом
	assert.False(t, tl.CoveredByFreeSlot(Interval{Start: 540, End: 630}, 90))
}
