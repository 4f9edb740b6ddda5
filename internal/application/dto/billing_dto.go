package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/facturas.
// UserID solo lo respeta el handler cuando el token es de un AUDITOR; si no, se usa el del token.
type CreateInvoiceRequest struct {
	UserID int64                `json:"userId,omitempty"`
	Items  []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea de factura (producto y cantidad).
type InvoiceItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// InvoiceResponse factura con detalle.
type InvoiceResponse struct {
	ID            int64                 `json:"id"`
	InvoiceNumber int64                 `json:"invoiceNumber"`
	UserID        int64                 `json:"userId"`
	Total         decimal.Decimal       `json:"total"`
	Items         []InvoiceItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// InvoiceItemResponse línea de detalle en la respuesta.
type InvoiceItemResponse struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoiceId"`
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	ProviderID  *int64          `json:"providerId,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
