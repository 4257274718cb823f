package entity

import "time"

// Account es el registro de identidad (análogo a la cuenta del proveedor de auth).
// DisplayName y AvatarURL son los atributos de presentación que los posts
// copian como snapshot al momento de publicar.
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	DisplayName  string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
