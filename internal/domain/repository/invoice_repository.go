package repository

import (
	"context"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/invoice"
)

// InvoiceRepository define el puerto de persistencia para facturas y sus líneas.
type InvoiceRepository interface {
	// Create persiste cabecera y líneas en una transacción y descuenta stock.
	Create(ctx context.Context, calc *invoice.CalculatedInvoice) (*entity.Invoice, error)
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	Delete(ctx context.Context, id int64) (*entity.Invoice, error)
}
