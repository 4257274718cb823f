// seed crea el esquema de La Cafetería y carga datos de demostración:
// dos cuentas con su perfil y unos posts con likes cruzados.
//
// Uso: go run ./cmd/seed
// Idempotente: el esquema usa IF NOT EXISTS y los datos ON CONFLICT DO NOTHING.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cafe-social-api/pkg/config"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		display_name  TEXT NOT NULL DEFAULT '',
		avatar_url    TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		uid             TEXT PRIMARY KEY REFERENCES accounts(id) ON DELETE CASCADE,
		full_name       TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL DEFAULT '',
		role            TEXT NOT NULL DEFAULT 'cliente',
		education_level TEXT NOT NULL DEFAULT 'estudiante',
		bio             TEXT NOT NULL DEFAULT '',
		profile_image   TEXT NOT NULL DEFAULT 'images/user.png',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id             TEXT PRIMARY KEY,
		author_id      TEXT NOT NULL,
		author_name    TEXT NOT NULL DEFAULT '',
		author_image   TEXT NOT NULL DEFAULT '',
		content        TEXT NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		likes          TEXT[] NOT NULL DEFAULT '{}',
		comments_count INT NOT NULL DEFAULT 0
	)`,
	// Vista de consulta por autor. Si falta, el listado por autor degrada a
	// recorrer posts completo con filtrado en memoria.
	`CREATE OR REPLACE VIEW posts_by_author AS
		SELECT id, author_id, author_name, author_image, content, created_at, likes, comments_count
		FROM posts`,
	`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC)`,
}

type demoAccount struct {
	id, email, password, name, bio string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			fail("crear esquema", err)
		}
	}
	fmt.Println("esquema listo: accounts, profiles, posts, posts_by_author")

	demo := []demoAccount{
		{id: uuid.NewString(), email: "lucia@cafeteria.test", password: "cafeteria1", name: "Lucía Herrera",
			bio: "Barista de fin de semana. El V60 no se negocia."},
		{id: uuid.NewString(), email: "marco@cafeteria.test", password: "cafeteria2", name: "Marco Delgado",
			bio: entity.DefaultBio},
	}
	for i := range demo {
		if err := seedAccount(ctx, pool, &demo[i]); err != nil {
			fail("sembrar cuenta "+demo[i].email, err)
		}
	}

	posts := []struct {
		author  int
		content string
		ago     time.Duration
		likedBy []int
	}{
		{author: 0, content: "Primer lote de Huila tostado en casa. Notas a panela y mandarina.", ago: 3 * time.Hour, likedBy: []int{1}},
		{author: 1, content: "¿Alguien más opina que el espresso doble antes de las 7am cuenta como desayuno?", ago: 45 * time.Minute, likedBy: []int{0}},
		{author: 0, content: "Hoy en La Cafetería: cata a ciegas de tres orígenes. Traigan su taza.", ago: 5 * time.Minute},
	}
	for _, p := range posts {
		a := demo[p.author]
		var likes []string
		for _, idx := range p.likedBy {
			likes = append(likes, demo[idx].id)
		}
		if likes == nil {
			likes = []string{}
		}
		_, err := pool.Exec(ctx, `
			INSERT INTO posts (id, author_id, author_name, author_image, content, created_at, likes, comments_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
			ON CONFLICT (id) DO NOTHING`,
			uuid.NewString(), a.id, a.name, entity.DefaultAvatar, p.content, time.Now().Add(-p.ago), likes)
		if err != nil {
			fail("sembrar post", err)
		}
	}
	fmt.Printf("datos de demostración: %d cuentas, %d posts\n", len(demo), len(posts))
	fmt.Println("credenciales demo: lucia@cafeteria.test / cafeteria1 · marco@cafeteria.test / cafeteria2")
}

func seedAccount(ctx context.Context, pool *pgxpool.Pool, a *demoAccount) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear contraseña: %w", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO accounts (id, email, password_hash, display_name, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (email) DO NOTHING`,
		a.id, a.email, string(hash), a.name, entity.DefaultAvatar)
	if err != nil {
		return fmt.Errorf("insertar cuenta: %w", err)
	}
	// Si la cuenta ya existía, reutilizar su id para el perfil y los posts.
	if err := pool.QueryRow(ctx, `SELECT id FROM accounts WHERE email = $1`, a.email).Scan(&a.id); err != nil {
		return fmt.Errorf("resolver id de cuenta: %w", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO profiles (uid, full_name, email, role, education_level, bio, profile_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (uid) DO NOTHING`,
		a.id, a.name, a.email, entity.DefaultRole, entity.DefaultEducationLevel, a.bio, entity.DefaultAvatar)
	if err != nil {
		return fmt.Errorf("insertar perfil: %w", err)
	}
	return nil
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
