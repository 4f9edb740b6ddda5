package invoice

import "github.com/shopspring/decimal"

// ValidateItems falla si la solicitud no trae líneas. Debe ejecutarse antes que cualquier otra validación.
func ValidateItems(items []LineRequest) error {
	if len(items) == 0 {
		return &EmptyInvoiceError{}
	}
	return nil
}

// ValidateQuantity falla si la cantidad no es positiva.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return &InvalidQuantityError{Quantity: quantity}
	}
	return nil
}

// ValidatePrice falla si el precio no es positivo.
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return &InvalidPriceError{Price: price}
	}
	return nil
}

// ValidateStock falla si la cantidad pedida supera el stock disponible.
func ValidateStock(stock, requested int, productName string) error {
	if requested > stock {
		return &InsufficientStockError{
			ProductName: productName,
			Available:   stock,
			Requested:   requested,
		}
	}
	return nil
}
