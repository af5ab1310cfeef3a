package providerservice

// Provider модель провайдера услуг из ProviderService
type Provider struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	IsActive    bool   `json:"is_active"` // Профиль не заблокирован модерацией
}

// ErrorResponse модель ошибки от ProviderService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
