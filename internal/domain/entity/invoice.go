package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura persistida.
type Invoice struct {
	ID            int64
	InvoiceNumber int64
	UserID        int64
	Total         decimal.Decimal
	Items         []InvoiceItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceItem representa una línea de una factura persistida.
type InvoiceItem struct {
	ID          int64
	InvoiceID   int64
	ProductID   int64
	ProductName string // solo lectura, resuelto por JOIN
	ProviderID  *int64
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
