package invoice

import "github.com/shopspring/decimal"

// LineRequest línea solicitada: producto y cantidad.
type LineRequest struct {
	ProductID int64
	Quantity  int
}

// CalculatedLine línea calculada. Subtotal == UnitPrice * Quantity.
// InvoiceID queda en nil hasta que la factura se persiste.
type CalculatedLine struct {
	InvoiceID  *int64
	ProductID  int64
	Quantity   int
	ProviderID *int64
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}

// CalculatedInvoice factura calculada lista para persistir.
// Total == suma de Items[i].Subtotal y len(Items) >= 1.
type CalculatedInvoice struct {
	InvoiceNumber int64
	UserID        int64
	Items         []CalculatedLine
	Total         decimal.Decimal
}
