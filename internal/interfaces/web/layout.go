package web

import (
	"fmt"
	"strings"

	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/internal/interfaces/web/render"
)

// pageShell arma la página completa: cabecera común, cuerpo y script de la
// página. El HTML se construye igual que los fragmentos: concatenación con
// todo texto de usuario ya escapado.
func pageShell(title string, ses *entity.Session, body, script string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">`)
	fmt.Fprintf(&b, `<title>%s · La Cafetería</title>`, render.EscapeText(title))
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString(`<link rel="stylesheet" href="/static/app.css">`)
	b.WriteString(`</head><body>`)
	b.WriteString(navBar(ses))
	b.WriteString(`<main class="container">`)
	b.WriteString(body)
	b.WriteString(`</main>`)
	if script != "" {
		b.WriteString(`<script>`)
		b.WriteString(script)
		b.WriteString(`</script>`)
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

func navBar(ses *entity.Session) string {
	var b strings.Builder
	b.WriteString(`<nav class="topbar"><a href="/dashboard" class="brand">&#9749; La Cafetería</a>`)
	if ses != nil {
		fmt.Fprintf(&b, `<a href="/profile" class="nav-user"><img src="%s" alt="" class="avatar small"> %s</a>`,
			render.EscapeText(ses.AvatarURL), render.EscapeText(ses.DisplayName))
		b.WriteString(`<button id="logoutBtn" class="nav-link">Salir</button>`)
	} else {
		b.WriteString(`<a href="/login" class="nav-link">Entrar</a>`)
	}
	b.WriteString(`</nav>`)
	return b.String()
}

// logoutScript cierra sesión y navega al login. Compartido por todas las páginas.
const logoutScript = `
var logoutBtn = document.getElementById('logoutBtn');
if (logoutBtn) logoutBtn.addEventListener('click', function() {
  fetch('/api/auth/logout', {method: 'POST'}).then(function() { window.location.href = '/login'; });
});`

// postControlsScript enlaza likes y borrados de las tarjetas de post.
// El like se invierte de forma optimista y no se revierte si la llamada
// falla: inconsistencia visual asumida hasta la próxima recarga.
const postControlsScript = `
document.querySelectorAll('.like-btn').forEach(function(btn) {
  btn.addEventListener('click', function() {
    btn.classList.toggle('active');
    fetch('/api/posts/' + btn.dataset.id + '/like', {method: 'POST'})
      .then(function(r) { return r.json(); })
      .then(function(out) {
        if (out.like_count !== undefined) {
          btn.innerHTML = out.like_count > 0 ? '☕ ' + out.like_count : '☕';
        }
      });
  });
});
document.querySelectorAll('.delete-btn').forEach(function(btn) {
  btn.addEventListener('click', function() {
    if (!confirm('¿Seguro que quieres borrar este post?')) return;
    fetch('/api/posts/' + btn.dataset.id, {method: 'DELETE'}).then(function(r) {
      if (r.ok) {
        var el = document.getElementById('post-' + btn.dataset.id);
        if (el) el.remove();
      }
    });
  });
});`
