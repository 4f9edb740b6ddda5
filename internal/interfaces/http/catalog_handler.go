package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/application/usecase"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

// BrandHandler maneja /api/marcas.
type BrandHandler struct {
	uc    *usecase.BrandUseCase
	audit *usecase.AuditLogUseCase
}

// NewBrandHandler construye el handler.
func NewBrandHandler(uc *usecase.BrandUseCase, audit *usecase.AuditLogUseCase) *BrandHandler {
	return &BrandHandler{uc: uc, audit: audit}
}

// Create godoc
// @Summary      Crear marca
// @Tags         marcas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "Datos de la marca"
// @Success      201   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/marcas [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Success(c.Context(), entity.LogActionCreateBrand, userRef(c), out.Name)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar marcas
// @Tags         marcas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BrandResponse
// @Router       /api/marcas [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener marca por ID
// @Tags         marcas
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.BrandResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marcas/{id} [get]
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByName godoc
// @Summary      Buscar marca por nombre
// @Tags         marcas
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre"
// @Success      200  {object}  dto.BrandResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marcas/nombre/{name} [get]
func (h *BrandHandler) GetByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return badParam(c, "name")
	}
	out, err := h.uc.GetByName(c.Context(), name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar marca
// @Tags         marcas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID"
// @Param        body  body  dto.UpdateBrandRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BrandResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/marcas/{id} [put]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.UpdateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Success(c.Context(), entity.LogActionUpdateBrand, userRef(c), out.Name)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar marca
// @Tags         marcas
// @Security     Bearer
// @Param        id  path  int  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marcas/{id} [delete]
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	h.audit.Success(c.Context(), entity.LogActionDeleteBrand, userRef(c), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// CategoryHandler maneja /api/categorias (solo lectura).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categorias [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProviderHandler maneja /api/proveedores (solo lectura).
type ProviderHandler struct {
	uc *usecase.ProviderUseCase
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProviderResponse
// @Router       /api/proveedores [get]
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.ProviderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProviderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
