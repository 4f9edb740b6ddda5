package billing

import (
	"context"
	"time"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// ProductLookup resuelve productos por ID en lote. Puede devolver menos productos que IDs pedidos.
type ProductLookup interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
}

// InvoiceStore persiste y consulta facturas.
// Create debe ser atómico: cabecera, líneas y descuento de stock en una misma transacción.
type InvoiceStore interface {
	Create(ctx context.Context, calc *invoice.CalculatedInvoice) (*entity.Invoice, error)
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	Delete(ctx context.Context, id int64) (*entity.Invoice, error)
}

// NumberGenerator entrega el siguiente número de factura.
type NumberGenerator interface {
	NextInvoiceNumber(ctx context.Context) (int64, error)
}

// InvoiceCreatedEvent evento publicado tras persistir una factura.
type InvoiceCreatedEvent struct {
	InvoiceID     int64           `json:"invoiceId"`
	InvoiceNumber int64           `json:"invoiceNumber"`
	UserID        int64           `json:"userId"`
	Total         decimal.Decimal `json:"total"`
	Lines         int             `json:"lines"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// EventPublisher publica eventos de facturación hacia el broker.
type EventPublisher interface {
	PublishInvoiceCreated(ctx context.Context, evt InvoiceCreatedEvent) error
}

// InvoiceLineForPDF línea de factura con los datos que necesita la representación gráfica.
type InvoiceLineForPDF struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// InvoicePDFGenerator genera el PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, customer *entity.User, lines []InvoiceLineForPDF) ([]byte, error)
}
