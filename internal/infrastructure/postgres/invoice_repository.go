package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/invoice"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q  Querier
	tx *TxRunner
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(db DB) *InvoiceRepo {
	return &InvoiceRepo{q: db, tx: NewTxRunner(db)}
}

// Create descuenta stock, inserta cabecera y líneas en una sola transacción.
// El descuento es condicional (stock >= cantidad); si otra venta se llevó el stock
// entre el cálculo y la persistencia se devuelve InsufficientStockError y nada se guarda.
// Las cantidades se suman por producto y los UPDATE van en orden ascendente de id,
// así dos facturas concurrentes bloquean las filas siempre en el mismo orden.
func (r *InvoiceRepo) Create(ctx context.Context, calc *invoice.CalculatedInvoice) (*entity.Invoice, error) {
	var invoiceID int64
	err := r.tx.Run(ctx, func(q Querier) error {
		for _, d := range stockDemand(calc.Items) {
			if err := decrementStock(ctx, q, d.productID, d.quantity); err != nil {
				return err
			}
		}

		err := q.QueryRow(ctx, `
			INSERT INTO invoices (invoice_number, user_id, total, created_at, updated_at)
			VALUES ($1, $2, $3, now(), now())
			RETURNING id`,
			calc.InvoiceNumber, calc.UserID, calc.Total,
		).Scan(&invoiceID)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("número de factura %d repetido: %w", calc.InvoiceNumber, domain.ErrConflict)
			}
			if isForeignKeyViolation(err) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("insert invoice: %w", err)
		}

		for _, line := range calc.Items {
			_, err := q.Exec(ctx, `
				INSERT INTO invoice_items (invoice_id, product_id, provider_id, quantity, unit_price, subtotal)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				invoiceID, line.ProductID, line.ProviderID, line.Quantity, line.UnitPrice, line.Subtotal,
			)
			if err != nil {
				return fmt.Errorf("insert invoice item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if isTxConflict(err) {
			return nil, fmt.Errorf("factura en conflicto con otra venta: %w", domain.ErrConflict)
		}
		return nil, err
	}
	return r.GetByID(ctx, invoiceID)
}

type productDemand struct {
	productID int64
	quantity  int
}

// stockDemand agrupa las líneas por producto, ordenadas por id.
func stockDemand(items []invoice.CalculatedLine) []productDemand {
	totals := make(map[int64]int, len(items))
	ids := make([]int64, 0, len(items))
	for _, line := range items {
		if _, seen := totals[line.ProductID]; !seen {
			ids = append(ids, line.ProductID)
		}
		totals[line.ProductID] += line.Quantity
	}
	slices.Sort(ids)
	out := make([]productDemand, len(ids))
	for i, id := range ids {
		out[i] = productDemand{productID: id, quantity: totals[id]}
	}
	return out
}

func decrementStock(ctx context.Context, q Querier, productID int64, quantity int) error {
	tag, err := q.Exec(ctx, `
		UPDATE products SET stock = stock - $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`, productID, quantity)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var name string
	var stock int
	err = q.QueryRow(ctx, `SELECT name, stock FROM products WHERE id = $1`, productID).Scan(&name, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &invoice.ProductNotFoundError{ProductID: productID}
		}
		return fmt.Errorf("leer stock: %w", err)
	}
	return &invoice.InsufficientStockError{ProductName: name, Available: stock, Requested: quantity}
}

// GetByID obtiene una factura con sus líneas.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	return getInvoice(ctx, r.q, id)
}

// List devuelve todas las facturas con sus líneas, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_number, user_id, total, created_at, updated_at
		FROM invoices ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	var out []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.UserID, &inv.Total, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, &inv)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := attachItems(ctx, r.q, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina la factura (las líneas caen en cascada) y devuelve lo borrado.
// Devuelve (nil, nil) si no existía.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) (*entity.Invoice, error) {
	var deleted *entity.Invoice
	err := r.tx.Run(ctx, func(q Querier) error {
		inv, err := getInvoice(ctx, q, id)
		if err != nil || inv == nil {
			return err
		}
		if _, err := q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		deleted = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func getInvoice(ctx context.Context, q Querier, id int64) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := q.QueryRow(ctx, `
		SELECT id, invoice_number, user_id, total, created_at, updated_at
		FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.InvoiceNumber, &inv.UserID, &inv.Total, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := attachItems(ctx, q, []*entity.Invoice{&inv}); err != nil {
		return nil, err
	}
	return &inv, nil
}

// attachItems carga las líneas de todas las facturas con una sola consulta.
func attachItems(ctx context.Context, q Querier, invoices []*entity.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Invoice, len(invoices))
	ids := make([]int64, 0, len(invoices))
	for _, inv := range invoices {
		inv.Items = []entity.InvoiceItem{}
		byID[inv.ID] = inv
		ids = append(ids, inv.ID)
	}
	rows, err := q.Query(ctx, `
		SELECT ii.id, ii.invoice_id, ii.product_id, COALESCE(p.name, ''), ii.provider_id,
		       ii.quantity, ii.unit_price, ii.subtotal
		FROM invoice_items ii
		LEFT JOIN products p ON p.id = ii.product_id
		WHERE ii.invoice_id = ANY($1)
		ORDER BY ii.id`, ids)
	if err != nil {
		return fmt.Errorf("get invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName, &it.ProviderID,
			&it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		if inv, ok := byID[it.InvoiceID]; ok {
			inv.Items = append(inv.Items, it)
		}
	}
	return rows.Err()
}
