package entity

import "time"

// Valores por defecto del perfil al registrarse.
const (
	DefaultRole           = "cliente"
	DefaultEducationLevel = "estudiante"
	DefaultBio            = "Nuevo por aquí, descubriendo el café"
	DefaultAvatar         = "images/user.png"
)

// Profile es el documento de perfil, con clave UID = Account.ID.
// Un UID identifica exactamente una cuenta y a lo sumo un perfil.
type Profile struct {
	UID            string
	FullName       string
	Email          string
	Role           string // etiqueta de presentación, no autorización
	EducationLevel string
	Bio            string
	ProfileImage   string
	CreatedAt      time.Time
}

// ProfileUpdate son los campos que el usuario puede editar. Punteros nil = sin cambio.
type ProfileUpdate struct {
	FullName       *string
	EducationLevel *string
	Bio            *string
	ProfileImage   *string
}

// Empty indica si la actualización no toca ningún campo.
func (u ProfileUpdate) Empty() bool {
	return u.FullName == nil && u.EducationLevel == nil && u.Bio == nil && u.ProfileImage == nil
}
