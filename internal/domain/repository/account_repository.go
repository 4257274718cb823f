package repository

import "github.com/jhoicas/cafe-social-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para registros de
// identidad (DIP). Es la superficie "servicio de identidad" del backend.
type AccountRepository interface {
	Create(acc *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	// UpdateDisplayAttributes actualiza nombre y/o avatar de presentación.
	// Cadenas vacías significan "sin cambio".
	UpdateDisplayAttributes(id, displayName, avatarURL string) error
	Delete(id string) error
}
