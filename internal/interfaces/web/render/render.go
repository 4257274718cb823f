// Package render construye los fragmentos HTML de las vistas a partir de los
// documentos del feed. Todo texto aportado por usuarios pasa por EscapeText
// antes de insertarse en el markup.
package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jhoicas/cafe-social-api/internal/application/dto"
	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/internal/domain/feed"
)

// EscapeText escapa ampersand, ángulos y comillas para que el contenido de
// usuario se renderice como texto literal, nunca como markup.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

// PostCard fragmento de post para el feed del dashboard: cabecera del autor
// con enlace al perfil, contenido, control de like y botón de borrado solo
// cuando la sesión es del autor.
func PostCard(p *dto.PostResponse, ses *entity.Session, now time.Time) string {
	uid := ""
	if ses != nil {
		uid = ses.UID
	}
	isAuthor := uid != "" && p.AuthorID == uid

	profileLink := "/u/" + p.AuthorID
	if isAuthor {
		profileLink = "/profile"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<article class="post-card" id="post-%s">`, EscapeText(p.ID))
	b.WriteString(`<header class="post-header">`)
	fmt.Fprintf(&b, `<a href="%s" class="post-author">`, profileLink)
	fmt.Fprintf(&b, `<img src="%s" alt="" class="avatar">`, EscapeText(p.AuthorImage))
	fmt.Fprintf(&b, `<span class="author-name">%s</span>`, EscapeText(p.AuthorName))
	b.WriteString(`</a>`)
	fmt.Fprintf(&b, `<span class="post-time">%s</span>`, feed.TimeAgo(p.CreatedAt, now))
	if isAuthor {
		fmt.Fprintf(&b, `<button class="delete-btn" data-id="%s" title="Borrar">&times;</button>`, EscapeText(p.ID))
	}
	b.WriteString(`</header>`)
	fmt.Fprintf(&b, `<p class="post-content">%s</p>`, EscapeText(p.Content))
	b.WriteString(likeControl(p, uid))
	b.WriteString(`</article>`)
	return b.String()
}

// ProfilePostCard fragmento compacto para las listas de perfil: fecha,
// contenido y, según el modo, botón de borrado (perfil propio) o control de
// like (perfil ajeno).
func ProfilePostCard(p *dto.PostResponse, ses *entity.Session, now time.Time, own bool) string {
	uid := ""
	if ses != nil {
		uid = ses.UID
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<article class="post-card compact" id="post-%s">`, EscapeText(p.ID))
	b.WriteString(`<header class="post-header">`)
	fmt.Fprintf(&b, `<span class="post-time">%s</span>`, feed.TimeAgo(p.CreatedAt, now))
	if own {
		fmt.Fprintf(&b, `<button class="delete-btn" data-id="%s" title="Borrar">&times;</button>`, EscapeText(p.ID))
	}
	b.WriteString(`</header>`)
	fmt.Fprintf(&b, `<p class="post-content">%s</p>`, EscapeText(p.Content))
	if own {
		fmt.Fprintf(&b, `<span class="like-count">&#9749; %d</span>`, len(p.Likes))
	} else {
		b.WriteString(likeControl(p, uid))
	}
	b.WriteString(`</article>`)
	return b.String()
}

// likeControl control de like con estado activo cuando el uid ya es miembro
// del set. La UI lo invierte de forma optimista y luego llama a la API.
func likeControl(p *dto.PostResponse, uid string) string {
	liked := uid != "" && feed.HasLiked(p.Likes, uid)
	class := "like-btn"
	if liked {
		class += " active"
	}
	label := "&#9749;"
	if n := len(p.Likes); n > 0 {
		label = fmt.Sprintf("&#9749; %d", n)
	}
	return fmt.Sprintf(`<button class="%s" data-id="%s">%s</button>`, class, EscapeText(p.ID), label)
}

// ProfileInfo fragmento de la ficha de perfil (nombre, rol, educación, bio).
func ProfileInfo(p *dto.ProfileResponse) string {
	var b strings.Builder
	b.WriteString(`<section class="profile-info">`)
	fmt.Fprintf(&b, `<img src="%s" alt="" class="avatar large">`, EscapeText(p.ProfileImage))
	fmt.Fprintf(&b, `<h1>%s</h1>`, EscapeText(p.FullName))
	fmt.Fprintf(&b, `<span class="badge">%s</span>`, EscapeText(p.Role))
	fmt.Fprintf(&b, `<p class="education">%s</p>`, EscapeText(p.EducationLevel))
	fmt.Fprintf(&b, `<p class="bio">%s</p>`, EscapeText(p.Bio))
	b.WriteString(`</section>`)
	return b.String()
}

// StatsFor calcula las estadísticas de perfil sobre los posts ya proyectados.
func StatsFor(posts []*dto.PostResponse) feed.Stats {
	s := feed.Stats{TotalPosts: len(posts)}
	for _, p := range posts {
		s.TotalLikes += len(p.Likes)
	}
	return s
}

// StatsBar fragmento de estadísticas del perfil.
func StatsBar(s feed.Stats) string {
	return fmt.Sprintf(
		`<section class="stats"><span>%d posts</span><span>%d cafés recibidos</span></section>`,
		s.TotalPosts, s.TotalLikes,
	)
}

// EmptyFeed estado vacío del feed global.
func EmptyFeed() string {
	return `<div class="empty-state"><h3>La cafetería está vacía</h3><p>Sé el primero en publicar algo hoy</p></div>`
}

// EmptyOwnPosts estado vacío del perfil propio.
func EmptyOwnPosts() string {
	return `<div class="empty-state"><h3>Todavía no publicaste nada</h3><p><a href="/dashboard">Pasa por la cafetería</a> y escribe tu primer post</p></div>`
}

// EmptyUserPosts estado vacío del perfil ajeno.
func EmptyUserPosts() string {
	return `<div class="empty-state"><p>Este usuario todavía no publicó nada.</p></div>`
}

// UserNotFound aviso de perfil inexistente.
func UserNotFound() string {
	return `<div class="empty-state error"><h3>No encontramos a este usuario</h3></div>`
}

// LoadError aviso genérico de fallo de carga; el detalle queda en el log.
func LoadError() string {
	return `<div class="empty-state error"><p>Hubo un problema cargando los posts.</p></div>`
}
