package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/cafe-social-api/internal/domain"
	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository construye el adaptador de persistencia de perfiles.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// Set escribe el documento de perfil completo (upsert con clave uid).
func (r *ProfileRepo) Set(p *entity.Profile) error {
	query := `
		INSERT INTO profiles (uid, full_name, email, role, education_level, bio, profile_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (uid) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			education_level = EXCLUDED.education_level,
			bio = EXCLUDED.bio,
			profile_image = EXCLUDED.profile_image`
	_, err := r.pool.Exec(context.Background(), query,
		p.UID, p.FullName, p.Email, p.Role, p.EducationLevel, p.Bio, p.ProfileImage, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// GetByUID obtiene el documento de perfil.
func (r *ProfileRepo) GetByUID(uid string) (*entity.Profile, error) {
	query := `
		SELECT uid, full_name, email, role, education_level, bio, profile_image, created_at
		FROM profiles WHERE uid = $1`
	var p entity.Profile
	err := r.pool.QueryRow(context.Background(), query, uid).Scan(
		&p.UID, &p.FullName, &p.Email, &p.Role, &p.EducationLevel, &p.Bio, &p.ProfileImage, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Update aplica un merge parcial: campos nil no se tocan.
func (r *ProfileRepo) Update(uid string, u entity.ProfileUpdate) error {
	if u.Empty() {
		return nil
	}
	query := `
		UPDATE profiles SET
			full_name       = COALESCE($2, full_name),
			education_level = COALESCE($3, education_level),
			bio             = COALESCE($4, bio),
			profile_image   = COALESCE($5, profile_image)
		WHERE uid = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		uid, u.FullName, u.EducationLevel, u.Bio, u.ProfileImage,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el documento de perfil. No es error que no exista: el borrado
// de cuenta debe poder continuar aunque el perfil haya quedado huérfano.
func (r *ProfileRepo) Delete(uid string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM profiles WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
