package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoices  InvoiceStore
	userRepo  repository.UserRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(invoices InvoiceStore, userRepo repository.UserRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{
		invoices:  invoices,
		userRepo:  userRepo,
		generator: generator,
	}
}

// DownloadInvoicePDF carga la factura con sus líneas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	// El cliente es opcional en la representación: si el usuario ya no existe se omite.
	var customer *entity.User
	if u, uErr := uc.userRepo.GetByID(ctx, inv.UserID); uErr == nil {
		customer = u
	}

	lines := make([]InvoiceLineForPDF, 0, len(inv.Items))
	for _, it := range inv.Items {
		name := it.ProductName
		if name == "" {
			name = fmt.Sprintf("Producto %d", it.ProductID)
		}
		lines = append(lines, InvoiceLineForPDF{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, customer, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%d.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}
