// Package feed contiene la lógica pura del feed: membresía de likes, orden,
// filtrado por autor y estadísticas de perfil. Sin I/O ni dependencias.
package feed

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
)

// HasLiked indica si el uid es miembro del set de likes.
func HasLiked(likes []string, uid string) bool {
	for _, id := range likes {
		if id == uid {
			return true
		}
	}
	return false
}

// SortByNewest ordena los posts por fecha de creación descendente (más
// recientes primero). Orden estable: empates conservan el orden de entrada.
func SortByNewest(posts []*entity.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

// FilterByAuthor devuelve el subconjunto con AuthorID == uid conservando el
// orden relativo de entrada. Es el camino degradado de getUserPosts:
// O(total posts) en lugar de O(posts del autor).
func FilterByAuthor(posts []*entity.Post, uid string) []*entity.Post {
	out := make([]*entity.Post, 0, len(posts))
	for _, p := range posts {
		if p.AuthorID == uid {
			out = append(out, p)
		}
	}
	return out
}

// Stats estadísticas de perfil: total de posts y suma de likes recibidos.
// El conteo vive en la capa de vista, que ya tiene los posts proyectados.
type Stats struct {
	TotalPosts int
	TotalLikes int
}

// TimeAgo etiqueta relativa para la vista: "ahora", "hace N min", "hace N h".
// Cortes: más de una hora en horas, más de un minuto en minutos.
func TimeAgo(createdAt, now time.Time) string {
	seconds := now.Sub(createdAt).Seconds()
	switch {
	case seconds > 3600:
		return fmt.Sprintf("hace %d h", int(seconds/3600))
	case seconds > 60:
		return fmt.Sprintf("hace %d min", int(seconds/60))
	default:
		return "ahora"
	}
}
