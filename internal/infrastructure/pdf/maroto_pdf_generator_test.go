package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/jhoicas/gestor-ventas-api/internal/application/billing"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "$0,00",
		"200":       "$200,00",
		"25000":     "$25.000,00",
		"1234567.5": "$1.234.567,50",
		"-1500":     "-$1.500,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateInvoicePDF(t *testing.T) {
	gen := NewMarotoPDFGenerator("Tienda de Prueba")
	inv := &entity.Invoice{
		ID: 1, InvoiceNumber: 17, UserID: 3,
		Total:     decimal.NewFromInt(700),
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	lines := []appbilling.InvoiceLineForPDF{
		{ProductName: "Teclado", Quantity: 2, UnitPrice: decimal.NewFromInt(200), Subtotal: decimal.NewFromInt(400)},
		{ProductName: "Mouse", Quantity: 1, UnitPrice: decimal.NewFromInt(300), Subtotal: decimal.NewFromInt(300)},
	}

	withCustomer, err := gen.GenerateInvoicePDF(context.Background(), inv,
		&entity.User{FirstName: "Ana", LastName: "Pérez", Email: "ana@example.com", City: "Medellín"}, lines)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(withCustomer, []byte("%PDF")))

	withoutCustomer, err := gen.GenerateInvoicePDF(context.Background(), inv, nil, lines)
	require.NoError(t, err)
	assert.NotEmpty(t, withoutCustomer)
}
