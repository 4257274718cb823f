package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-social-api/internal/application/dto"
	"github.com/jhoicas/cafe-social-api/internal/application/feed"
	"github.com/jhoicas/cafe-social-api/internal/domain"
)

// FeedHandler maneja publicación, feed, likes y borrado de posts.
type FeedHandler struct {
	uc *feed.UseCase
}

// NewFeedHandler construye el handler del feed.
func NewFeedHandler(uc *feed.UseCase) *FeedHandler {
	return &FeedHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar un post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePostRequest  true  "contenido"
// @Success      201   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/posts [post]
func (h *FeedHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePost(GetSession(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "se requiere sesión activa"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el contenido no puede estar vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Feed completo (más recientes primero)
// @Tags         posts
// @Produce      json
// @Success      200  {array}  dto.PostResponse
// @Router       /api/posts [get]
func (h *FeedHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetPosts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByAuthor godoc
// @Summary      Posts de un autor (más recientes primero)
// @Tags         posts
// @Produce      json
// @Param        uid  path  string  true  "UID del autor"
// @Success      200  {array}  dto.PostResponse
// @Router       /api/users/{uid}/posts [get]
func (h *FeedHandler) ListByAuthor(c *fiber.Ctx) error {
	out, err := h.uc.GetUserPosts(c.Params("uid"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ToggleLike godoc
// @Summary      Invertir like del usuario de sesión sobre un post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "ID del post"
// @Success      200  {object}  dto.ToggleLikeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/{id}/like [post]
func (h *FeedHandler) ToggleLike(c *fiber.Ctx) error {
	out, err := h.uc.ToggleLike(GetSession(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "se requiere sesión activa"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el post ya no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar un post
// @Description  Sin verificación de autoría en el servidor: la vista solo muestra el control al autor. Debilidad documentada del diseño.
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "ID del post"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [delete]
func (h *FeedHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeletePost(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el post ya no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OKResponse{Success: true})
}
