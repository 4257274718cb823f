package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OKResponse cuerpo mínimo para operaciones sin payload (logout, delete).
type OKResponse struct {
	Success bool `json:"success"`
}
