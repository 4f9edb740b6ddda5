package invoice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinelas para errors.Is. Todas son rechazos de la solicitud, ninguna es reintentable.
var (
	ErrEmptyInvoice      = errors.New("la factura debe tener al menos un producto")
	ErrInvalidQuantity   = errors.New("la cantidad de productos debe ser mayor a 0")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInvalidPrice      = errors.New("el precio debe ser mayor a 0")
	ErrInsufficientStock = errors.New("stock insuficiente para el producto")
)

// EmptyInvoiceError la solicitud no trae líneas.
type EmptyInvoiceError struct{}

func (e *EmptyInvoiceError) Error() string { return ErrEmptyInvoice.Error() }
func (e *EmptyInvoiceError) Unwrap() error { return ErrEmptyInvoice }

// InvalidQuantityError una línea trae cantidad <= 0.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s (recibido: %d)", ErrInvalidQuantity.Error(), e.Quantity)
}
func (e *InvalidQuantityError) Unwrap() error { return ErrInvalidQuantity }

// ProductNotFoundError el producto referenciado no fue resuelto por el catálogo.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrProductNotFound.Error(), e.ProductID)
}
func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

// InvalidPriceError el producto resuelto tiene precio <= 0.
type InvalidPriceError struct {
	Price decimal.Decimal
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("%s (precio: %s)", ErrInvalidPrice.Error(), e.Price.String())
}
func (e *InvalidPriceError) Unwrap() error { return ErrInvalidPrice }

// InsufficientStockError la cantidad pedida supera el stock disponible.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s %s. Disponible: %d, Solicitado: %d",
		ErrInsufficientStock.Error(), e.ProductName, e.Available, e.Requested)
}
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// IsRejection indica si err es alguno de los rechazos de validación de facturas.
func IsRejection(err error) bool {
	return errors.Is(err, ErrEmptyInvoice) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInsufficientStock)
}
