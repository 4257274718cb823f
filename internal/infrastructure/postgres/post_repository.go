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

var _ repository.PostRepository = (*PostRepo)(nil)

// PostRepo implementación del puerto PostRepository sobre PostgreSQL.
// likes se persiste como text[]; los updates de like usan semántica de set:
// append solo si el uid no está, remove de todas las apariciones.
type PostRepo struct {
	pool *pgxpool.Pool
}

// NewPostRepository construye el adaptador de persistencia de posts.
func NewPostRepository(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

const postColumns = `id, author_id, author_name, author_image, content, created_at, likes, comments_count`

// Add persiste un post nuevo. created_at lo asigna el servidor de DB.
func (r *PostRepo) Add(p *entity.Post) error {
	query := `
		INSERT INTO posts (id, author_id, author_name, author_image, content, likes, comments_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`
	err := r.pool.QueryRow(context.Background(), query,
		p.ID, p.AuthorID, p.AuthorName, p.AuthorImage, p.Content, p.Likes, p.CommentsCount,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID obtiene un post por ID.
func (r *PostRepo) GetByID(id string) (*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	p, err := scanPost(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post by id: %w", err)
	}
	return p, nil
}

// ListAll devuelve el feed completo, más recientes primero. Sin paginación:
// el sistema está pensado para datasets pequeños.
func (r *PostRepo) ListAll() ([]*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC, id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListByAuthor devuelve los posts del autor, más recientes primero. Consulta
// la vista posts_by_author; si la vista no existe en el esquema retorna
// domain.ErrIndexUnavailable para que el caller degrade a filtrado local.
func (r *PostRepo) ListByAuthor(uid string) ([]*entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts_by_author WHERE author_id = $1 ORDER BY created_at DESC, id`
	rows, err := r.pool.Query(context.Background(), query, uid)
	if err != nil {
		if isUndefinedRelation(err) {
			return nil, domain.ErrIndexUnavailable
		}
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

// AddLike agrega el uid al set de likes. Idempotente: el CASE deja la fila
// intacta si el uid ya es miembro, así cero filas afectadas significa
// exactamente "el post no existe" y se mapea a ErrNotFound.
func (r *PostRepo) AddLike(postID, uid string) error {
	query := `
		UPDATE posts
		SET likes = CASE WHEN $2 = ANY(likes) THEN likes ELSE array_append(likes, $2) END
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, postID, uid)
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveLike quita el uid del set de likes. Idempotente; si el post ya no
// existe retorna ErrNotFound en lugar de reportar éxito.
func (r *PostRepo) RemoveLike(postID, uid string) error {
	query := `UPDATE posts SET likes = array_remove(likes, $2) WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, postID, uid)
	if err != nil {
		return fmt.Errorf("remove like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el post. Retorna ErrNotFound si ya no existía.
func (r *PostRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	var p entity.Post
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.AuthorName, &p.AuthorImage, &p.Content,
		&p.CreatedAt, &p.Likes, &p.CommentsCount,
	)
	if err != nil {
		return nil, err
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	return &p, nil
}

func collectPosts(rows pgx.Rows) ([]*entity.Post, error) {
	var list []*entity.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
