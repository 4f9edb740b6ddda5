package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/invoice"
)

func TestCalculateSubtotal(t *testing.T) {
	got := invoice.CalculateSubtotal(decimal.NewFromInt(200), 3)
	assert.True(t, got.Equal(decimal.NewFromInt(600)), "200 x 3 debe ser 600, fue %s", got)
}

func TestCalculateTotal(t *testing.T) {
	lines := []invoice.CalculatedLine{
		{Subtotal: decimal.NewFromInt(600)},
		{Subtotal: decimal.NewFromInt(300)},
	}
	assert.True(t, invoice.CalculateTotal(lines).Equal(decimal.NewFromInt(900)))
}

func TestCalculateTotal_SinLineas(t *testing.T) {
	assert.True(t, invoice.CalculateTotal(nil).IsZero())
}

// Sumar muchas líneas con centavos no acumula error (con float64 0.1*3 != 0.3).
func TestCalculateTotal_SinPerdidaDePrecision(t *testing.T) {
	price := decimal.RequireFromString("0.10")
	lines := make([]invoice.CalculatedLine, 0, 1000)
	for i := 0; i < 1000; i++ {
		lines = append(lines, invoice.CalculatedLine{Subtotal: invoice.CalculateSubtotal(price, 3)})
	}
	assert.Equal(t, "300", invoice.CalculateTotal(lines).String())
}
