package repository

import "github.com/jhoicas/cafe-social-api/internal/domain/entity"

// ProfileRepository define el puerto de persistencia para documentos de perfil.
type ProfileRepository interface {
	Set(p *entity.Profile) error
	GetByUID(uid string) (*entity.Profile, error)
	// Update aplica un merge parcial; campos nil no se tocan.
	Update(uid string, u entity.ProfileUpdate) error
	Delete(uid string) error
}
