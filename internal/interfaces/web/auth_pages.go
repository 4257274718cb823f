package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apphttp "github.com/jhoicas/cafe-social-api/internal/interfaces/http"
)

// LoginPage formulario de login. Con sesión ya activa va directo al dashboard.
func (h *Handler) LoginPage(c *fiber.Ctx) error {
	if apphttp.GetSession(c) != nil {
		return c.Redirect("/dashboard")
	}
	var b strings.Builder
	b.WriteString(`<section class="auth-box"><h1>Entrar</h1>`)
	b.WriteString(`<input id="email" type="email" placeholder="Email">`)
	b.WriteString(`<input id="password" type="password" placeholder="Contraseña">`)
	b.WriteString(`<button id="loginBtn">Entrar</button>`)
	b.WriteString(`<p id="authError" class="error"></p>`)
	b.WriteString(`<p>¿Sin cuenta? <a href="/signup">Regístrate</a></p>`)
	b.WriteString(`</section>`)

	c.Type("html")
	return c.SendString(pageShell("Entrar", nil, b.String(), loginScript))
}

// SignUpPage formulario de registro.
func (h *Handler) SignUpPage(c *fiber.Ctx) error {
	if apphttp.GetSession(c) != nil {
		return c.Redirect("/dashboard")
	}
	var b strings.Builder
	b.WriteString(`<section class="auth-box"><h1>Crear cuenta</h1>`)
	b.WriteString(`<input id="fullName" placeholder="Nombre completo">`)
	b.WriteString(`<input id="email" type="email" placeholder="Email">`)
	b.WriteString(`<input id="password" type="password" placeholder="Contraseña (mínimo 6)">`)
	b.WriteString(`<button id="signupBtn">Registrarme</button>`)
	b.WriteString(`<p id="authError" class="error"></p>`)
	b.WriteString(`<p>¿Ya tienes cuenta? <a href="/login">Entra</a></p>`)
	b.WriteString(`</section>`)

	c.Type("html")
	return c.SendString(pageShell("Crear cuenta", nil, b.String(), signupScript))
}

const loginScript = `
document.getElementById('loginBtn').addEventListener('click', function() {
  fetch('/api/auth/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({
      email: document.getElementById('email').value,
      password: document.getElementById('password').value
    })
  }).then(function(r) {
    if (r.ok) { window.location.href = '/dashboard'; return; }
    return r.json().then(function(out) {
      document.getElementById('authError').textContent = out.message || 'No se pudo iniciar sesión';
    });
  });
});`

const signupScript = `
document.getElementById('signupBtn').addEventListener('click', function() {
  fetch('/api/auth/signup', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({
      full_name: document.getElementById('fullName').value,
      email: document.getElementById('email').value,
      password: document.getElementById('password').value
    })
  }).then(function(r) {
    if (r.ok) { window.location.href = '/dashboard'; return; }
    return r.json().then(function(out) {
      document.getElementById('authError').textContent = out.message || 'No se pudo crear la cuenta';
    });
  });
});`
