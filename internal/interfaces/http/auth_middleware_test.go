package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/cafe-social-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/cafe-social-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUID       = "00000000-0000-0000-0000-000000000001"
	testEmail     = "lucia@cafeteria.test"
	testName      = "Lucía Herrera"
	testAvatar    = "images/user.png"
	testIssuer    = "cafe-social-test"
	testExpMin    = 60
)

// buildTestApp monta dos rutas sobre los dos middlewares de sesión:
//   - /protected con AuthMiddleware: sin sesión responde 401
//   - /page con LoadSession: sin sesión sigue y reporta anon
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			ses := apphttp.GetSession(c)
			return c.JSON(fiber.Map{"uid": ses.UID, "name": ses.DisplayName})
		},
	)
	app.Get("/page",
		apphttp.LoadSession(testJWTSecret),
		func(c *fiber.Ctx) error {
			if ses := apphttp.GetSession(c); ses != nil {
				return c.JSON(fiber.Map{"anon": false, "uid": ses.UID})
			}
			return c.JSON(fiber.Map{"anon": true})
		},
	)
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUID, testEmail, testName, testAvatar, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func doRequest(t *testing.T, app *fiber.App, path string, mutate func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido en header Authorization → pasa y la sesión llega al handler.
func TestAuthMiddleware_BearerValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+validToken(t))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, testUID, body["uid"], "la sesión debe exponer el uid del token")
	assert.Equal(t, testName, body["name"])
}

// El mismo token por cookie de sesión también autentica: las páginas web y
// los clientes API comparten el mismo punto de resolución.
func TestAuthMiddleware_CookieValida(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: validToken(t)})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la cookie de sesión debe autenticar igual que el header")
}

// Sin token → 401 con código UNAUTHENTICATED.
func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "UNAUTHENTICATED", body["code"])
}

// Token firmado con otro secreto → 401, nunca sesión parcial.
func TestAuthMiddleware_FirmaInvalida(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", testUID, testEmail, testName, testAvatar, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "/protected", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Esquema distinto de Bearer en el header → se ignora el header.
func TestAuthMiddleware_EsquemaNoBearer(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", func(r *http.Request) {
		r.Header.Set("Authorization", "Basic "+validToken(t))
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LoadSession
// ──────────────────────────────────────────────────────────────────────────────

// LoadSession sin token no corta la petición: el handler decide qué hacer.
func TestLoadSession_SinTokenSigueAnonimo(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/page", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["anon"])
}

// Con cookie válida LoadSession carga la misma sesión que AuthMiddleware.
func TestLoadSession_ConCookieCargaSesion(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/page", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: validToken(t)})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["anon"])
	assert.Equal(t, testUID, body["uid"])
}

// Token corrupto en la cookie degrada a anónimo en vez de fallar la página.
func TestLoadSession_CookieCorruptaEsAnonimo(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/page", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: "no-es-un-jwt"})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["anon"])
}
