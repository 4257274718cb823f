package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/internal/domain/feed"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// postAt construye un post mínimo con autor y antigüedad en minutos.
func postAt(id, author string, minutesAgo int, likes ...string) *entity.Post {
	return &entity.Post{
		ID:        id,
		AuthorID:  author,
		CreatedAt: base.Add(-time.Duration(minutesAgo) * time.Minute),
		Likes:     likes,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// HasLiked
// ──────────────────────────────────────────────────────────────────────────────

func TestHasLiked(t *testing.T) {
	likes := []string{"uid-a", "uid-b"}
	assert.True(t, feed.HasLiked(likes, "uid-a"))
	assert.False(t, feed.HasLiked(likes, "uid-z"), "uid ausente no debe contar como like")
	assert.False(t, feed.HasLiked(nil, "uid-a"), "set vacío nunca contiene likes")
}

// ──────────────────────────────────────────────────────────────────────────────
// SortByNewest
// ──────────────────────────────────────────────────────────────────────────────

func TestSortByNewest_DescendenteEstricto(t *testing.T) {
	posts := []*entity.Post{
		postAt("viejo", "a", 120),
		postAt("nuevo", "a", 1),
		postAt("medio", "b", 60),
	}
	feed.SortByNewest(posts)

	require.Len(t, posts, 3)
	assert.Equal(t, "nuevo", posts[0].ID)
	assert.Equal(t, "medio", posts[1].ID)
	assert.Equal(t, "viejo", posts[2].ID)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt),
			"el orden debe ser estrictamente descendente por fecha")
	}
}

func TestSortByNewest_EmpatesConservanOrden(t *testing.T) {
	// Dos posts con el mismo timestamp: el orden de entrada decide.
	posts := []*entity.Post{
		postAt("primero", "a", 30),
		postAt("segundo", "b", 30),
	}
	feed.SortByNewest(posts)
	assert.Equal(t, "primero", posts[0].ID)
	assert.Equal(t, "segundo", posts[1].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterByAuthor
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterByAuthor_SubconjuntoEnMismoOrden(t *testing.T) {
	posts := []*entity.Post{
		postAt("p1", "ana", 1),
		postAt("p2", "beto", 2),
		postAt("p3", "ana", 3),
		postAt("p4", "carla", 4),
	}
	got := feed.FilterByAuthor(posts, "ana")

	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID, "el filtrado debe conservar el orden relativo")
}

func TestFilterByAuthor_SinCoincidencias(t *testing.T) {
	posts := []*entity.Post{postAt("p1", "ana", 1)}
	got := feed.FilterByAuthor(posts, "nadie")
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// TimeAgo — cortes de la etiqueta relativa
// ──────────────────────────────────────────────────────────────────────────────

func TestTimeAgo(t *testing.T) {
	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"recien publicado", 10 * time.Second, "ahora"},
		{"justo un minuto", 60 * time.Second, "ahora"},
		{"minutos", 5 * time.Minute, "hace 5 min"},
		{"justo una hora", 60 * time.Minute, "hace 60 min"},
		{"horas", 3 * time.Hour, "hace 3 h"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := feed.TimeAgo(base.Add(-tc.ago), base)
			assert.Equal(t, tc.want, got)
		})
	}
}
