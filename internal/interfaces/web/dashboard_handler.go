package web

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	apphttp "github.com/jhoicas/cafe-social-api/internal/interfaces/http"
	"github.com/jhoicas/cafe-social-api/internal/interfaces/web/render"
)

// Dashboard página principal: caja de publicación y feed completo.
// Sin sesión redirige al login (navegación dura, no error recuperable).
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	ses := apphttp.GetSession(c)
	if ses == nil {
		return c.Redirect("/login")
	}

	var b strings.Builder
	b.WriteString(`<section class="publish-box">`)
	b.WriteString(`<textarea id="postInput" placeholder="¿Qué estás tomando hoy?"></textarea>`)
	b.WriteString(`<button id="publishBtn">Publicar</button>`)
	b.WriteString(`</section>`)
	b.WriteString(`<section id="postsFeed">`)

	posts, err := h.feed.GetPosts()
	switch {
	case err != nil:
		h.log.Error().Err(err).Msg("cargar feed")
		b.WriteString(render.LoadError())
	case len(posts) == 0:
		b.WriteString(render.EmptyFeed())
	default:
		now := time.Now()
		for _, p := range posts {
			b.WriteString(render.PostCard(p, ses, now))
		}
	}
	b.WriteString(`</section>`)

	c.Type("html")
	return c.SendString(pageShell("La cafetería", ses, b.String(), dashboardScript))
}

const dashboardScript = logoutScript + postControlsScript + `
var publishBtn = document.getElementById('publishBtn');
var postInput = document.getElementById('postInput');
function publish() {
  var content = postInput.value.trim();
  if (!content) return;
  publishBtn.disabled = true;
  fetch('/api/posts', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({content: content})
  }).then(function(r) {
    if (r.ok) { window.location.reload(); return; }
    return r.json().then(function(out) {
      alert('Hubo un problema: ' + (out.message || r.status));
      publishBtn.disabled = false;
    });
  });
}
publishBtn.addEventListener('click', publish);
postInput.addEventListener('keypress', function(e) {
  if (e.key === 'Enter' && !e.shiftKey) { e.preventDefault(); publish(); }
});`
