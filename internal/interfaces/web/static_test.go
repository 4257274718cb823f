package web

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cafe-social-api/internal/application/dto"
	domfeed "github.com/jhoicas/cafe-social-api/internal/domain/feed"
	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/internal/interfaces/web/render"
)

// Cada clase que emiten las páginas y fragmentos debe tener un selector en la
// hoja de estilos. Así un rename de clase en un solo lado no deja markup sin
// estilo en silencio.
func TestAppCSS_CubreLasClasesEmitidas(t *testing.T) {
	ses := &entity.Session{UID: "ana", DisplayName: "Ana", AvatarURL: "images/user.png"}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	post := &dto.PostResponse{
		ID: "p1", AuthorID: "ana", AuthorName: "Ana", AuthorImage: "images/user.png",
		Content: "un post", CreatedAt: now.Add(-time.Hour), Likes: []string{"beto"},
	}
	profile := &dto.ProfileResponse{UID: "ana", FullName: "Ana", Role: "cliente",
		EducationLevel: "estudiante", Bio: "bio", ProfileImage: "images/user.png"}

	// Muestra representativa del markup de todas las páginas.
	markup := strings.Join([]string{
		pageShell("Título", ses, "", ""),
		pageShell("Título", nil, "", ""),
		render.PostCard(post, ses, now),
		render.ProfilePostCard(post, ses, now, true),
		render.ProfilePostCard(post, &entity.Session{UID: "beto"}, now, false),
		render.ProfileInfo(profile),
		render.StatsBar(domfeed.Stats{TotalPosts: 1, TotalLikes: 2}),
		render.EmptyFeed(),
		render.UserNotFound(),
		render.LoadError(),
		editFormFragment("Ana", "estudiante", "bio", "images/user.png"),
		`<section class="publish-box"></section>`,
		`<section class="auth-box"><p class="error"></p></section>`,
		`<section class="danger-zone"></section>`,
	}, "\n")

	classAttr := regexp.MustCompile(`class="([^"]+)"`)
	for _, m := range classAttr.FindAllStringSubmatch(markup, -1) {
		for _, class := range strings.Fields(m[1]) {
			assert.Contains(t, appCSS, "."+class,
				"la clase %q emitida por el markup no tiene selector en app.css", class)
		}
	}
}
