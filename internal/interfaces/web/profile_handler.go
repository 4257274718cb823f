package web

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	apphttp "github.com/jhoicas/cafe-social-api/internal/interfaces/http"
	"github.com/jhoicas/cafe-social-api/internal/interfaces/web/render"
)

// Profile página del perfil propio: ficha editable, estadísticas y posts
// propios con control de borrado.
func (h *Handler) Profile(c *fiber.Ctx) error {
	ses := apphttp.GetSession(c)
	if ses == nil {
		return c.Redirect("/login")
	}

	var b strings.Builder

	profile, err := h.account.GetUserData(ses.UID)
	if err != nil {
		h.log.Error().Err(err).Str("uid", ses.UID).Msg("cargar perfil propio")
		b.WriteString(render.UserNotFound())
		c.Type("html")
		return c.SendString(pageShell("Mi perfil", ses, b.String(), logoutScript))
	}
	b.WriteString(render.ProfileInfo(profile))
	b.WriteString(editFormFragment(profile.FullName, profile.EducationLevel, profile.Bio, profile.ProfileImage))

	posts, err := h.feed.GetUserPosts(ses.UID)
	if err != nil {
		h.log.Error().Err(err).Str("uid", ses.UID).Msg("cargar posts propios")
		b.WriteString(render.LoadError())
	} else {
		b.WriteString(render.StatsBar(render.StatsFor(posts)))

		b.WriteString(`<section id="userPostsList">`)
		if len(posts) == 0 {
			b.WriteString(render.EmptyOwnPosts())
		} else {
			now := time.Now()
			for _, p := range posts {
				b.WriteString(render.ProfilePostCard(p, ses, now, true))
			}
		}
		b.WriteString(`</section>`)
	}

	b.WriteString(`<section class="danger-zone"><button id="deleteAccountBtn">Borrar mi cuenta</button></section>`)

	c.Type("html")
	return c.SendString(pageShell("Mi perfil", ses, b.String(), profileScript))
}

func editFormFragment(fullName, education, bio, imageURL string) string {
	var b strings.Builder
	b.WriteString(`<details class="edit-profile"><summary>Editar perfil</summary>`)
	b.WriteString(`<input id="editName" value="` + render.EscapeText(fullName) + `" placeholder="Nombre completo">`)
	b.WriteString(`<input id="editEducation" value="` + render.EscapeText(education) + `" placeholder="Nivel educativo">`)
	b.WriteString(`<textarea id="editBio" placeholder="Bio">` + render.EscapeText(bio) + `</textarea>`)
	b.WriteString(`<input id="editImage" value="` + render.EscapeText(imageURL) + `" placeholder="URL de imagen de perfil">`)
	b.WriteString(`<button id="saveProfileBtn">Guardar</button>`)
	b.WriteString(`</details>`)
	return b.String()
}

const profileScript = logoutScript + postControlsScript + `
document.getElementById('saveProfileBtn').addEventListener('click', function() {
  var payload = {
    full_name: document.getElementById('editName').value,
    education_level: document.getElementById('editEducation').value,
    bio: document.getElementById('editBio').value
  };
  var img = document.getElementById('editImage').value.trim();
  if (img) payload.profile_image = img;
  fetch('/api/me/profile', {
    method: 'PUT',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(payload)
  }).then(function(r) {
    if (r.ok) { window.location.reload(); return; }
    return r.json().then(function(out) { alert('No se pudo guardar: ' + (out.message || r.status)); });
  });
});
document.getElementById('deleteAccountBtn').addEventListener('click', function() {
  if (!confirm('Esto borra tu cuenta y tu perfil. ¿Continuar?')) return;
  fetch('/api/me', {method: 'DELETE'}).then(function(r) {
    if (r.ok) { window.location.href = '/signup'; return; }
    return r.json().then(function(out) {
      if (out.code === 'REQUIRES_RECENT_LOGIN') {
        alert('Por seguridad, vuelve a iniciar sesión y reintenta.');
        window.location.href = '/login';
      } else {
        alert('No se pudo borrar la cuenta: ' + (out.message || r.status));
      }
    });
  });
});`
