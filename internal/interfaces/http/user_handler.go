package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/application/usecase"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

// UserHandler maneja /api/usuarios.
type UserHandler struct {
	uc    *usecase.UserUseCase
	audit *usecase.AuditLogUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, audit *usecase.AuditLogUseCase) *UserHandler {
	return &UserHandler{uc: uc, audit: audit}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Success(c.Context(), entity.LogActionCreateUser, userRef(c), "usuario creado: "+out.Email)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Info(c.Context(), entity.LogActionGetAllUsers, userRef(c), "")
	return c.JSON(list)
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/usuarios/perfil [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByEmail godoc
// @Summary      Buscar usuario por email
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/email/{email} [get]
func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return badParam(c, "email")
	}
	out, err := h.uc.GetByEmail(c.Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Description  Un USER solo puede consultar su propio registro.
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	if !canActOn(c, id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su propio usuario"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Info(c.Context(), entity.LogActionViewUser, userRef(c), out.Email)
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Description  Un USER solo puede actualizar su propio registro y no puede cambiar su rol.
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if !canActOn(c, id) || (GetRole(c) != entity.RoleAuditor && (in.Role != nil || in.IsActive != nil)) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permisos para modificar este usuario"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Success(c.Context(), entity.LogActionUpdateUser, userRef(c), out.Email)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Security     Bearer
// @Param        id  path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	h.audit.Success(c.Context(), entity.LogActionDeleteUser, userRef(c), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// canActOn: AUDITOR sobre cualquiera, USER solo sobre sí mismo.
func canActOn(c *fiber.Ctx, id int64) bool {
	return GetRole(c) == entity.RoleAuditor || GetUserID(c) == id
}
