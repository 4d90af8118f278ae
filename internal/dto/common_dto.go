package dto

// ErrorResponse is the uniform failure envelope. Message is localized to the
// viewer's language; Code is the stable machine-readable category.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Redis     string `json:"redis"`
	GameAPI   string `json:"game_api"`
}
