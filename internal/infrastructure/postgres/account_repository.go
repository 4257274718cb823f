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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia de identidades.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create persiste un nuevo registro de identidad.
func (r *AccountRepo) Create(acc *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, display_name, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		acc.ID, acc.Email, acc.PasswordHash, acc.DisplayName, acc.AvatarURL,
		acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, display_name, avatar_url, created_at, updated_at
		FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.AvatarURL,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return &a, nil
}

// GetByEmail obtiene una cuenta por email.
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, display_name, avatar_url, created_at, updated_at
		FROM accounts WHERE email = $1 LIMIT 1`
	var a entity.Account
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.AvatarURL,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return &a, nil
}

// UpdateDisplayAttributes actualiza nombre y/o avatar. Vacío = sin cambio.
func (r *AccountRepo) UpdateDisplayAttributes(id, displayName, avatarURL string) error {
	query := `
		UPDATE accounts SET
			display_name = COALESCE(NULLIF($2, ''), display_name),
			avatar_url   = COALESCE(NULLIF($3, ''), avatar_url),
			updated_at   = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id, displayName, avatarURL)
	if err != nil {
		return fmt.Errorf("update display attributes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el registro de identidad.
func (r *AccountRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
