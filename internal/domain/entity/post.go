package entity

import "time"

// Post es una publicación del feed. AuthorName y AuthorImage son un snapshot
// denormalizado del autor al momento de crear el post: NO se sincronizan con
// ediciones posteriores del perfil (cache sin sincronizar, asumido).
type Post struct {
	ID            string
	AuthorID      string
	AuthorName    string
	AuthorImage   string
	Content       string
	CreatedAt     time.Time // asignado por el servidor
	Likes         []string  // set de UIDs, sin duplicados
	CommentsCount int       // siempre 0, reservado
}
