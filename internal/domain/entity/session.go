package entity

import "time"

// Session es el contexto de identidad autenticada de una petición.
// Se construye en un único punto (el middleware de auth) a partir del token
// y se pasa explícitamente a cada operación que requiere sesión; no hay
// estado global de usuario actual.
type Session struct {
	UID         string
	Email       string
	DisplayName string
	AvatarURL   string
	IssuedAt    time.Time
}

// FreshWithin indica si la sesión se emitió dentro de la ventana dada.
// Las operaciones destructivas de cuenta exigen sesión fresca.
func (s *Session) FreshWithin(window time.Duration, now time.Time) bool {
	if s == nil {
		return false
	}
	return now.Sub(s.IssuedAt) <= window
}
