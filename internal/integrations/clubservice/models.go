package clubservice

// Club модель клуба (арендодателя) из ClubService
type Club struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	ManagerIDs []int64 `json:"manager_ids"`
	IsActive   bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от ClubService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
