package calculate_price

// Request модель запроса расчёта стоимости
type Request struct {
	FieldID         int64 // ID поля
	DurationMinutes int   // Длительность бронирования в минутах
}

// Response модель ответа с рассчитанной стоимостью
type Response struct {
	FieldID         int64
	DurationMinutes int
	PricePerHour    float64
	Price           float64 // Стоимость, округлённая до двух знаков
}
