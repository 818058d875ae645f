package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-lite/internal/application/audit"
	"github.com/tu-usuario/inventario-lite/pkg/jwt"
)

// LocalActor key del actor en c.Locals.
const LocalActor = "actor"

// ActorMiddleware extrae el nombre del actor de un Bearer Token opcional.
// No autentica nada: sin header, con formato malo o con token inválido el
// actor simplemente queda en "system" y la petición sigue. El nombre alimenta
// el campo `by` de la bitácora de actividad.
func ActorMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := audit.ActorSystem
		if authHeader := c.Get("Authorization"); authHeader != "" && jwtSecret != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if name, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1])); err == nil && name != "" {
					actor = name
				}
			}
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el nombre del actor del contexto (después del middleware).
func GetActor(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocalActor).(string); ok && s != "" {
		return s
	}
	return audit.ActorSystem
}
