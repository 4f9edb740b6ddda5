package postgres

import (
	"context"
	"fmt"
)

// SequenceNumberGenerator entrega números de factura desde la secuencia invoice_number_seq.
// Los números son únicos y crecientes; una transacción abortada deja un hueco.
type SequenceNumberGenerator struct {
	q Querier
}

// NewSequenceNumberGenerator construye el generador.
func NewSequenceNumberGenerator(q Querier) *SequenceNumberGenerator {
	return &SequenceNumberGenerator{q: q}
}

// NextInvoiceNumber devuelve el siguiente valor de la secuencia.
func (g *SequenceNumberGenerator) NextInvoiceNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := g.q.QueryRow(ctx, `SELECT nextval('invoice_number_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("nextval invoice_number_seq: %w", err)
	}
	return n, nil
}
