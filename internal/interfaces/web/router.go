package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cafe-social-api/internal/application/account"
	"github.com/jhoicas/cafe-social-api/internal/application/feed"
	apphttp "github.com/jhoicas/cafe-social-api/internal/interfaces/http"
)

// Deps dependencias de los controladores de página.
type Deps struct {
	AccountUC *account.UseCase
	FeedUC    *feed.UseCase
	JWTSecret string
	Log       zerolog.Logger
}

// Handler controladores de las páginas server-rendered.
type Handler struct {
	account *account.UseCase
	feed    *feed.UseCase
	log     zerolog.Logger
}

// Router registra las páginas. LoadSession resuelve la sesión desde la cookie
// sin exigirla: cada página aplica su propia regla de redirección.
func Router(app *fiber.App, deps Deps) {
	h := &Handler{account: deps.AccountUC, feed: deps.FeedUC, log: deps.Log}

	app.Get("/static/app.css", func(c *fiber.Ctx) error {
		c.Type("css")
		return c.SendString(appCSS)
	})

	pages := app.Group("/", apphttp.LoadSession(deps.JWTSecret))
	pages.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/dashboard") })
	pages.Get("/login", h.LoginPage)
	pages.Get("/signup", h.SignUpPage)
	pages.Get("/dashboard", h.Dashboard)
	pages.Get("/profile", h.Profile)
	pages.Get("/u/:uid", h.UserProfile)
}
