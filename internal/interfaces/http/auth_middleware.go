package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-social-api/internal/application/dto"
	"github.com/jhoicas/cafe-social-api/internal/domain/entity"
	"github.com/jhoicas/cafe-social-api/pkg/jwt"
)

// SessionCookie nombre de la cookie de sesión que usan las páginas web.
const SessionCookie = "cafe_session"

// localSession key de c.Locals donde vive la sesión resuelta.
const localSession = "session"

// AuthMiddleware exige sesión: valida el token (Bearer o cookie) y deja la
// Session en c.Locals. Es el único punto donde un token se convierte en
// sesión; de aquí en adelante la sesión se pasa explícitamente.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ses := resolveSession(c, jwtSecret)
		if ses == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "se requiere sesión activa"})
		}
		c.Locals(localSession, ses)
		return c.Next()
	}
}

// LoadSession resuelve la sesión si hay token válido pero no exige tenerla:
// las páginas deciden redirigir en lugar de responder 401.
func LoadSession(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ses := resolveSession(c, jwtSecret); ses != nil {
			c.Locals(localSession, ses)
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto, o nil si no hay.
func GetSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(localSession)
	if v == nil {
		return nil
	}
	ses, _ := v.(*entity.Session)
	return ses
}

// resolveSession extrae el token del header Authorization o de la cookie de
// sesión y lo valida. Token ausente o inválido -> nil.
func resolveSession(c *fiber.Ctx, jwtSecret string) *entity.Session {
	token := bearerToken(c)
	if token == "" {
		token = c.Cookies(SessionCookie)
	}
	if token == "" {
		return nil
	}
	claims, err := jwt.Parse(jwtSecret, token)
	if err != nil {
		return nil
	}
	ses := &entity.Session{
		UID:         claims.UserID,
		Email:       claims.Email,
		DisplayName: claims.Name,
		AvatarURL:   claims.Avatar,
	}
	if claims.IssuedAt != nil {
		ses.IssuedAt = claims.IssuedAt.Time
	}
	return ses
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
