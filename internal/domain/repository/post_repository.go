package repository

import "github.com/jhoicas/cafe-social-api/internal/domain/entity"

// PostRepository define el puerto de persistencia para posts.
type PostRepository interface {
	Add(p *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	// ListAll devuelve el feed completo ordenado por fecha descendente.
	ListAll() ([]*entity.Post, error)
	// ListByAuthor devuelve los posts del autor, fecha descendente. Puede
	// retornar domain.ErrIndexUnavailable si el almacén no soporta la
	// consulta filtrada+ordenada; el caller degrada a ListAll + filtro local.
	ListByAuthor(uid string) ([]*entity.Post, error)
	// AddLike / RemoveLike con semántica de set: idempotentes, sin
	// duplicados. Sobre un post inexistente retornan domain.ErrNotFound.
	AddLike(postID, uid string) error
	RemoveLike(postID, uid string) error
	Delete(id string) error
}
