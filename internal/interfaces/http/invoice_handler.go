package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestor-ventas-api/internal/application/billing"
	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/application/usecase"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/invoice"
)

// InvoiceHandler maneja /api/facturas.
type InvoiceHandler struct {
	svc   *billing.InvoiceService
	pdf   *billing.PDFUseCase
	audit *usecase.AuditLogUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(svc *billing.InvoiceService, pdf *billing.PDFUseCase, audit *usecase.AuditLogUseCase) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, pdf: pdf, audit: audit}
}

// Create godoc
// @Summary      Crear factura
// @Description  Valida líneas, precios y stock, calcula subtotales y total, descuenta stock y asigna número.
// @Description  userId solo se respeta si el token es de un AUDITOR.
// @Tags         facturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Líneas de la factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/facturas [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	userID := GetUserID(c)
	if GetRole(c) == entity.RoleAuditor && in.UserID > 0 {
		userID = in.UserID
	}

	inv, err := h.svc.CreateInvoice(c.Context(), userID, billing.ToLineRequests(in.Items))
	if err != nil {
		if invoice.IsRejection(err) {
			h.audit.Failure(c.Context(), entity.LogActionCreateInvoice, userRef(c), err.Error())
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: rejectionCode(err), Message: err.Error()})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "el usuario de la factura no existe"})
		}
		return respondError(c, err)
	}
	h.audit.Success(c.Context(), entity.LogActionCreateInvoice, userRef(c), fmt.Sprintf("factura %d total %s", inv.InvoiceNumber, inv.Total.StringFixed(2)))
	return c.Status(fiber.StatusCreated).JSON(billing.ToInvoiceResponse(inv))
}

// List godoc
// @Summary      Listar facturas
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/facturas [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, billing.ToInvoiceResponse(inv))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	inv, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Info(c.Context(), entity.LogActionViewInvoice, userRef(c), fmt.Sprintf("factura %d", inv.InvoiceNumber))
	return c.JSON(billing.ToInvoiceResponse(inv))
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         facturas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Delete godoc
// @Summary      Eliminar factura
// @Description  No repone el stock descontado.
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	inv, err := h.svc.Delete(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	h.audit.Success(c.Context(), entity.LogActionDeleteInvoice, userRef(c), fmt.Sprintf("factura %d", inv.InvoiceNumber))
	return c.JSON(billing.ToInvoiceResponse(inv))
}

func rejectionCode(err error) string {
	switch {
	case errors.Is(err, invoice.ErrEmptyInvoice):
		return "EMPTY_INVOICE"
	case errors.Is(err, invoice.ErrInvalidQuantity):
		return "INVALID_QUANTITY"
	case errors.Is(err, invoice.ErrProductNotFound):
		return "PRODUCT_NOT_FOUND"
	case errors.Is(err, invoice.ErrInvalidPrice):
		return "INVALID_PRICE"
	case errors.Is(err, invoice.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	}
	return "VALIDATION"
}
