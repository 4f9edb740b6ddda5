package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/application/usecase"
)

// AuditLogHandler maneja /api/logs.
type AuditLogHandler struct {
	uc *usecase.AuditLogUseCase
}

// NewAuditLogHandler construye el handler.
func NewAuditLogHandler(uc *usecase.AuditLogUseCase) *AuditLogHandler {
	return &AuditLogHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de bitácora
// @Tags         logs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAuditLogRequest  true  "status, action, details"
// @Success      201   {object}  dto.AuditLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/logs [post]
func (h *AuditLogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAuditLogRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.UserID == nil {
		in.UserID = userRef(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar bitácora
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/logs [get]
func (h *AuditLogHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
