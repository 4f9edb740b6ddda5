package invoice

import "github.com/shopspring/decimal"

// CalculateSubtotal Subtotal = Precio * Cantidad (aritmética decimal, sin redondeo).
func CalculateSubtotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// CalculateTotal suma los subtotales en el orden recibido.
func CalculateTotal(lines []CalculatedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return total
}
