package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-social-api/internal/application/account"
	"github.com/jhoicas/cafe-social-api/internal/application/dto"
	"github.com/jhoicas/cafe-social-api/internal/domain"
)

// AccountHandler maneja perfil y cuenta del usuario autenticado.
type AccountHandler struct {
	uc *account.UseCase
}

// NewAccountHandler construye el handler de cuenta.
func NewAccountHandler(uc *account.UseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// GetUser godoc
// @Summary      Perfil de un usuario
// @Tags         users
// @Produce      json
// @Param        uid  path  string  true  "UID del usuario"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{uid} [get]
func (h *AccountHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.uc.GetUserData(c.Params("uid"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Editar el perfil propio
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/me/profile [put]
func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateUserProfile(GetSession(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "se requiere sesión activa"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Token refrescado con la identidad espejada.
	setSessionCookie(c, out.Token)
	return c.JSON(out)
}

// DeleteAccount godoc
// @Summary      Borrar la cuenta propia
// @Description  Exige sesión fresca; fuera de la ventana responde 403 REQUIRES_RECENT_LOGIN y el cliente debe re-autenticar y reintentar.
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.OKResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/me [delete]
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	err := h.uc.DeleteUserAccount(GetSession(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "se requiere sesión activa"})
		case errors.Is(err, domain.ErrRequiresRecentLogin):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "REQUIRES_RECENT_LOGIN", Message: "vuelve a iniciar sesión para borrar la cuenta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	clearSessionCookie(c)
	return c.JSON(dto.OKResponse{Success: true})
}
