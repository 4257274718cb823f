// Package feed implementa el servicio de posts: publicar, feed completo,
// posts por autor (con fallback de filtrado local), toggle de like y borrado.
package feed

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cafe-social-api/internal/application/dto"
	"github.com/jhoicas/cafe-social-api/internal/domain"
	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	domfeed "github.com/jhoicas/cafe-social-api/internal/domain/feed"
	"github.com/jhoicas/cafe-social-api/internal/domain/repository"
)

// UseCase casos de uso del feed.
type UseCase struct {
	posts repository.PostRepository
	log   zerolog.Logger
}

// NewUseCase construye el servicio de posts.
func NewUseCase(posts repository.PostRepository, log zerolog.Logger) *UseCase {
	return &UseCase{posts: posts, log: log}
}

// CreatePost publica un post. El nombre y avatar del autor se copian de la
// sesión como snapshot: ediciones posteriores del perfil no los actualizan.
func (uc *UseCase) CreatePost(ses *entity.Session, in dto.CreatePostRequest) (*dto.PostResponse, error) {
	if ses == nil {
		return nil, domain.ErrUnauthenticated
	}
	if in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	name := ses.DisplayName
	if name == "" {
		name = "Desconocido"
	}
	avatar := ses.AvatarURL
	if avatar == "" {
		avatar = entity.DefaultAvatar
	}
	post := &entity.Post{
		ID:            uuid.New().String(),
		AuthorID:      ses.UID,
		AuthorName:    name,
		AuthorImage:   avatar,
		Content:       in.Content,
		Likes:         []string{},
		CommentsCount: 0,
	}
	if err := uc.posts.Add(post); err != nil {
		return nil, err
	}
	return toPostResponse(post), nil
}

// GetPosts devuelve el feed completo, más recientes primero.
func (uc *UseCase) GetPosts() ([]*dto.PostResponse, error) {
	posts, err := uc.posts.ListAll()
	if err != nil {
		return nil, err
	}
	return toPostResponses(posts), nil
}

// GetUserPosts devuelve los posts de un autor, más recientes primero. El
// camino primario consulta filtrado+ordenado en el almacén; si el almacén
// reporta que falta el índice de apoyo, degrada a traer el feed completo y
// filtrar localmente. El resultado es idéntico en ambos caminos.
func (uc *UseCase) GetUserPosts(uid string) ([]*dto.PostResponse, error) {
	posts, err := uc.posts.ListByAuthor(uid)
	if err != nil {
		if !errors.Is(err, domain.ErrIndexUnavailable) {
			return nil, err
		}
		all, fallbackErr := uc.posts.ListAll()
		if fallbackErr != nil {
			return nil, fallbackErr
		}
		uc.log.Warn().
			Str("author_id", uid).
			Int("scanned", len(all)).
			Msg("índice de posts por autor no disponible, filtrando localmente")
		posts = domfeed.FilterByAuthor(all, uid)
	}
	return toPostResponses(posts), nil
}

// ToggleLike invierte la membresía del uid de sesión en el set de likes.
// Lee-y-escribe en dos pasos, sin atomicidad entre ellos: toggles concurrentes
// de usuarios distintos se resuelven por la semántica de set de cada escritura.
// Si el post desapareció entre la lectura y ahora, retorna ErrNotFound.
func (uc *UseCase) ToggleLike(ses *entity.Session, postID string) (*dto.ToggleLikeResponse, error) {
	if ses == nil {
		return nil, domain.ErrUnauthenticated
	}
	post, err := uc.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrNotFound
	}
	liked := domfeed.HasLiked(post.Likes, ses.UID)
	if liked {
		err = uc.posts.RemoveLike(postID, ses.UID)
	} else {
		err = uc.posts.AddLike(postID, ses.UID)
	}
	if err != nil {
		return nil, err
	}
	count := len(post.Likes)
	if liked {
		count--
	} else {
		count++
	}
	return &dto.ToggleLikeResponse{PostID: postID, Liked: !liked, LikeCount: count}, nil
}

// DeletePost borra el post sin verificar autoría: la restricción "solo el
// autor" vive únicamente en la vista, que solo muestra el control al autor.
// Debilidad documentada del diseño, no corregida aquí.
func (uc *UseCase) DeletePost(postID string) error {
	return uc.posts.Delete(postID)
}

func toPostResponse(p *entity.Post) *dto.PostResponse {
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}
	return &dto.PostResponse{
		ID:            p.ID,
		AuthorID:      p.AuthorID,
		AuthorName:    p.AuthorName,
		AuthorImage:   p.AuthorImage,
		Content:       p.Content,
		CreatedAt:     p.CreatedAt,
		Likes:         likes,
		CommentsCount: p.CommentsCount,
	}
}

func toPostResponses(posts []*entity.Post) []*dto.PostResponse {
	out := make([]*dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
