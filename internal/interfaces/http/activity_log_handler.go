package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
)

// ActivityLogHandler maneja la lectura de la bitácora de actividad.
type ActivityLogHandler struct {
	uc *usecase.ActivityLogUseCase
}

// NewActivityLogHandler construye el handler.
func NewActivityLogHandler(uc *usecase.ActivityLogUseCase) *ActivityLogHandler {
	return &ActivityLogHandler{uc: uc}
}

// List godoc
// @Summary      Listar la bitácora de actividad (más reciente primero)
// @Tags         activity-log
// @Produce      json
// @Success      200  {object}  map[string][]dto.ActivityLogResponse
// @Router       /productActivityLog [get]
func (h *ActivityLogHandler) List(c *fiber.Ctx) error {
	logs, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"logs": logs})
}
