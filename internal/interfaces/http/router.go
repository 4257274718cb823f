package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-social-api/internal/application/account"
	"github.com/jhoicas/cafe-social-api/internal/application/feed"
)

// RouterDeps dependencias para el router de la API JSON.
type RouterDeps struct {
	AccountUC *account.UseCase
	FeedUC    *feed.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AccountUC)
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	accountHandler := NewAccountHandler(deps.AccountUC)
	feedHandler := NewFeedHandler(deps.FeedUC)

	// Lecturas públicas de perfil y posts
	api.Get("/users/:uid", accountHandler.GetUser)
	api.Get("/users/:uid/posts", feedHandler.ListByAuthor)
	api.Get("/posts", feedHandler.List)

	// Rutas protegidas (requieren sesión)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Put("/me/profile", accountHandler.UpdateProfile)
	protected.Delete("/me", accountHandler.DeleteAccount)
	protected.Post("/posts", feedHandler.Create)
	protected.Post("/posts/:id/like", feedHandler.ToggleLike)
	// El borrado no verifica autoría en el servidor; ver FeedHandler.Delete.
	protected.Delete("/posts/:id", feedHandler.Delete)
}
