package web

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-social-api/internal/domain"
	apphttp "github.com/jhoicas/cafe-social-api/internal/interfaces/http"
	"github.com/jhoicas/cafe-social-api/internal/interfaces/web/render"
)

// UserProfile página de perfil ajeno (solo lectura). Si el uid pedido es el
// de la propia sesión, redirige al perfil editable en lugar de renderizar el
// visor de solo lectura.
func (h *Handler) UserProfile(c *fiber.Ctx) error {
	ses := apphttp.GetSession(c)
	if ses == nil {
		return c.Redirect("/login")
	}
	uid := c.Params("uid")
	if uid == ses.UID {
		return c.Redirect("/profile")
	}

	var b strings.Builder

	profile, err := h.account.GetUserData(uid)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.Error().Err(err).Str("uid", uid).Msg("cargar perfil ajeno")
		}
		b.WriteString(render.UserNotFound())
		c.Type("html")
		return c.SendString(pageShell("Usuario", ses, b.String(), logoutScript))
	}
	b.WriteString(render.ProfileInfo(profile))

	posts, err := h.feed.GetUserPosts(uid)
	if err != nil {
		h.log.Error().Err(err).Str("uid", uid).Msg("cargar posts del usuario")
		b.WriteString(render.LoadError())
	} else {
		b.WriteString(render.StatsBar(render.StatsFor(posts)))

		b.WriteString(`<section id="visitUserPostsList">`)
		if len(posts) == 0 {
			b.WriteString(render.EmptyUserPosts())
		} else {
			now := time.Now()
			for _, p := range posts {
				// Sin botón de borrado: es el perfil de otro usuario.
				b.WriteString(render.ProfilePostCard(p, ses, now, false))
			}
		}
		b.WriteString(`</section>`)
	}

	c.Type("html")
	return c.SendString(pageShell(profile.FullName, ses, b.String(), logoutScript+postControlsScript))
}
