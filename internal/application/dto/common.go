package dto

// ErrorResponse cuerpo de error HTTP fuera del sobre Result (auth, middleware).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
