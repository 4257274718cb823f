// Package account implementa el servicio de cuentas: registro, login,
// lectura y edición de perfil, y borrado de cuenta.
package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cafe-social-api/internal/application/dto"
	"github.com/jhoicas/cafe-social-api/internal/domain"
	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/internal/domain/repository"
	"github.com/jhoicas/cafe-social-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de cuenta.
type UseCase struct {
	accounts     repository.AccountRepository
	profiles     repository.ProfileRepository
	jwtCfg       JWTConfig
	reauthWindow time.Duration
}

// NewUseCase construye el servicio de cuentas. reauthWindow es la antigüedad
// máxima de sesión admitida para operaciones destructivas.
func NewUseCase(accounts repository.AccountRepository, profiles repository.ProfileRepository, jwtCfg JWTConfig, reauthWindow time.Duration) *UseCase {
	return &UseCase{accounts: accounts, profiles: profiles, jwtCfg: jwtCfg, reauthWindow: reauthWindow}
}

// SignUp crea el registro de identidad y después el documento de perfil con
// valores por defecto. Si el perfil falla después de crear la identidad, la
// identidad queda huérfana: no hay transacción compensatoria.
func (uc *UseCase) SignUp(in dto.SignUpRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidCredentials
	}
	existing, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	acc := &entity.Account{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  in.FullName,
		AvatarURL:    entity.DefaultAvatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accounts.Create(acc); err != nil {
		return nil, err
	}
	profile := &entity.Profile{
		UID:            acc.ID,
		FullName:       in.FullName,
		Email:          in.Email,
		Role:           entity.DefaultRole,
		EducationLevel: entity.DefaultEducationLevel,
		Bio:            entity.DefaultBio,
		ProfileImage:   entity.DefaultAvatar,
		CreatedAt:      now,
	}
	if err := uc.profiles.Set(profile); err != nil {
		// Identidad creada, perfil no: inconsistencia heredada y asumida.
		return nil, fmt.Errorf("%w: crear perfil tras registro: %v", domain.ErrStore, err)
	}
	return uc.issueSession(acc)
}

// Login verifica credenciales y emite un token de sesión.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	acc, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issueSession(acc)
}

// Logout termina la sesión. Con tokens sin estado no hay nada que revocar en
// el servidor: el cliente descarta el token.
func (uc *UseCase) Logout(_ *entity.Session) error {
	return nil
}

// GetUserData obtiene el documento de perfil de un uid.
func (uc *UseCase) GetUserData(uid string) (*dto.ProfileResponse, error) {
	p, err := uc.profiles.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(p), nil
}

// UpdateUserProfile aplica el merge parcial al perfil y, si vienen fullName o
// profileImage, los espeja sobre los atributos de presentación de la
// identidad. Devuelve un token refrescado con la identidad espejada.
func (uc *UseCase) UpdateUserProfile(ses *entity.Session, in dto.UpdateProfileRequest) (*dto.AuthResponse, error) {
	if ses == nil {
		return nil, domain.ErrUnauthenticated
	}
	update := entity.ProfileUpdate{
		FullName:       in.FullName,
		EducationLevel: in.EducationLevel,
		Bio:            in.Bio,
		ProfileImage:   in.ProfileImage,
	}
	if err := uc.profiles.Update(ses.UID, update); err != nil {
		return nil, err
	}
	var mirrorName, mirrorAvatar string
	if in.FullName != nil {
		mirrorName = *in.FullName
	}
	if in.ProfileImage != nil {
		mirrorAvatar = *in.ProfileImage
	}
	if mirrorName != "" || mirrorAvatar != "" {
		if err := uc.accounts.UpdateDisplayAttributes(ses.UID, mirrorName, mirrorAvatar); err != nil {
			return nil, err
		}
	}
	acc, err := uc.accounts.GetByID(ses.UID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrNotFound
	}
	return uc.issueSession(acc)
}

// DeleteUserAccount borra perfil y después identidad. Antes de tocar nada
// exige sesión fresca: fuera de la ventana retorna ErrRequiresRecentLogin sin
// efecto alguno, y el caller re-autentica y reintenta.
func (uc *UseCase) DeleteUserAccount(ses *entity.Session) error {
	if ses == nil {
		return domain.ErrUnauthenticated
	}
	if !ses.FreshWithin(uc.reauthWindow, time.Now()) {
		return domain.ErrRequiresRecentLogin
	}
	if err := uc.profiles.Delete(ses.UID); err != nil {
		return fmt.Errorf("%w: borrar perfil: %v", domain.ErrStore, err)
	}
	// Si esto falla el perfil ya se borró: fallo parcial asumido, sin rollback.
	return uc.accounts.Delete(ses.UID)
}

func (uc *UseCase) issueSession(acc *entity.Account) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, acc.ID, acc.Email, acc.DisplayName, acc.AvatarURL, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.SessionUser{
			UID:         acc.ID,
			Email:       acc.Email,
			DisplayName: acc.DisplayName,
			AvatarURL:   acc.AvatarURL,
		},
	}, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		UID:            p.UID,
		FullName:       p.FullName,
		Email:          p.Email,
		Role:           p.Role,
		EducationLevel: p.EducationLevel,
		Bio:            p.Bio,
		ProfileImage:   p.ProfileImage,
		CreatedAt:      p.CreatedAt,
	}
}
