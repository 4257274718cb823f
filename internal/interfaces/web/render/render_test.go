package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cafe-social-api/internal/application/dto"
	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/internal/domain/feed"
	"github.com/jhoicas/cafe-social-api/internal/interfaces/web/render"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func samplePost() *dto.PostResponse {
	return &dto.PostResponse{
		ID:          "post-1",
		AuthorID:    "uid-ana",
		AuthorName:  "Ana",
		AuthorImage: "images/ana.png",
		Content:     "un cortado, por favor",
		CreatedAt:   now.Add(-10 * time.Minute),
		Likes:       []string{},
	}
}

func session(uid string) *entity.Session {
	return &entity.Session{UID: uid, DisplayName: "X", IssuedAt: now}
}

// ──────────────────────────────────────────────────────────────────────────────
// EscapeText — contrato de escape
// ──────────────────────────────────────────────────────────────────────────────

func TestEscapeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`<script>alert(1)</script>`, `&lt;script&gt;alert(1)&lt;/script&gt;`},
		{`a & b`, `a &amp; b`},
		{`"comillas"`, `&#34;comillas&#34;`},
		{`'simples'`, `&#39;simples&#39;`},
		{`texto normal`, `texto normal`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, render.EscapeText(tc.in))
	}
}

func TestPostCard_ContenidoMaliciosoQuedaComoTextoLiteral(t *testing.T) {
	p := samplePost()
	p.Content = `<script>document.cookie</script>`

	out := render.PostCard(p, session("uid-beto"), now)

	assert.NotContains(t, out, "<script>", "el contenido nunca debe renderizarse como markup")
	assert.Contains(t, out, "&lt;script&gt;document.cookie&lt;/script&gt;")
}

func TestPostCard_NombreDeAutorEscapado(t *testing.T) {
	p := samplePost()
	p.AuthorName = `Ana <img src=x onerror=alert(1)>`

	out := render.PostCard(p, nil, now)
	assert.NotContains(t, out, "<img src=x")
}

// ──────────────────────────────────────────────────────────────────────────────
// PostCard — affordances según sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestPostCard_BotonBorrarSoloParaElAutor(t *testing.T) {
	p := samplePost()

	propio := render.PostCard(p, session("uid-ana"), now)
	assert.Contains(t, propio, "delete-btn", "el autor ve el control de borrado")
	assert.Contains(t, propio, `href="/profile"`, "el enlace del propio autor va al perfil editable")

	ajeno := render.PostCard(p, session("uid-beto"), now)
	assert.NotContains(t, ajeno, "delete-btn", "otros usuarios no ven el control de borrado")
	assert.Contains(t, ajeno, `href="/u/uid-ana"`)
}

func TestPostCard_LikeActivoSegunMembresia(t *testing.T) {
	p := samplePost()
	p.Likes = []string{"uid-beto", "uid-carla"}

	conLike := render.PostCard(p, session("uid-beto"), now)
	assert.Contains(t, conLike, "like-btn active")
	assert.Contains(t, conLike, "2", "el contador refleja el tamaño del set")

	sinLike := render.PostCard(p, session("uid-zoe"), now)
	assert.Contains(t, sinLike, "like-btn")
	assert.True(t, !strings.Contains(sinLike, "like-btn active"),
		"uid que no es miembro no debe ver el like activo")
}

func TestPostCard_TiempoRelativo(t *testing.T) {
	p := samplePost() // publicado hace 10 minutos
	out := render.PostCard(p, nil, now)
	assert.Contains(t, out, "hace 10 min")
}

// ──────────────────────────────────────────────────────────────────────────────
// ProfilePostCard
// ──────────────────────────────────────────────────────────────────────────────

func TestProfilePostCard_PropioVsAjeno(t *testing.T) {
	p := samplePost()
	p.Likes = []string{"uid-x"}

	propio := render.ProfilePostCard(p, session("uid-ana"), now, true)
	assert.Contains(t, propio, "delete-btn")
	assert.NotContains(t, propio, "like-btn", "el perfil propio muestra contador, no control de like")

	ajeno := render.ProfilePostCard(p, session("uid-beto"), now, false)
	assert.NotContains(t, ajeno, "delete-btn")
	assert.Contains(t, ajeno, "like-btn")
}

// ──────────────────────────────────────────────────────────────────────────────
// ProfileInfo / StatsBar
// ──────────────────────────────────────────────────────────────────────────────

func TestProfileInfo_CamposEscapados(t *testing.T) {
	out := render.ProfileInfo(&dto.ProfileResponse{
		FullName:       "Ana <b>T</b>",
		Role:           entity.DefaultRole,
		EducationLevel: entity.DefaultEducationLevel,
		Bio:            `bio con "comillas" & <tags>`,
		ProfileImage:   "images/ana.png",
	})
	assert.NotContains(t, out, "<b>")
	assert.NotContains(t, out, "<tags>")
	assert.Contains(t, out, "&lt;b&gt;")
}

func TestStatsFor(t *testing.T) {
	posts := []*dto.PostResponse{
		{ID: "p1", Likes: []string{"x", "y"}},
		{ID: "p2", Likes: []string{"z"}},
		{ID: "p3", Likes: []string{}},
	}
	s := render.StatsFor(posts)
	assert.Equal(t, 3, s.TotalPosts)
	assert.Equal(t, 3, s.TotalLikes, "la suma de likes debe contar todos los sets")

	s = render.StatsFor(nil)
	assert.Zero(t, s.TotalPosts)
	assert.Zero(t, s.TotalLikes)
}

func TestStatsBar(t *testing.T) {
	out := render.StatsBar(feed.Stats{TotalPosts: 4, TotalLikes: 9})
	assert.Contains(t, out, "4 posts")
	assert.Contains(t, out, "9 cafés recibidos")
}
