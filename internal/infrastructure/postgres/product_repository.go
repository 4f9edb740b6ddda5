package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, stock, images_url, brand_id, provider_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Las categorías viven en la tabla puente product_categories.
type ProductRepo struct {
	q  Querier
	tx *TxRunner
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db DB) *ProductRepo {
	return &ProductRepo{q: db, tx: NewTxRunner(db)}
}

// Create persiste el producto y sus categorías en una transacción.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product, categoryIDs []int64) error {
	return r.tx.Run(ctx, func(q Querier) error {
		query := `
			INSERT INTO products (name, description, price, stock, images_url, brand_id, provider_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`
		err := q.QueryRow(ctx, query,
			p.Name, nullIfEmpty(p.Description), p.Price, p.Stock, p.ImagesURL,
			p.BrandID, p.ProviderID, p.CreatedAt, p.UpdatedAt,
		).Scan(&p.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert product: %w", err)
		}
		return r.replaceCategories(ctx, q, p, categoryIDs)
	})
}

// GetByID obtiene un producto con sus categorías.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := r.attachCategories(ctx, []*entity.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByIDs resuelve varios productos en una consulta. No carga categorías.
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update actualiza el producto. categoryIDs nil conserva las categorías actuales.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product, categoryIDs []int64) error {
	return r.tx.Run(ctx, func(q Querier) error {
		query := `
			UPDATE products
			SET name = $2, description = $3, price = $4, stock = $5, images_url = $6,
			    brand_id = $7, provider_id = $8, updated_at = $9
			WHERE id = $1`
		tag, err := q.Exec(ctx, query,
			p.ID, p.Name, nullIfEmpty(p.Description), p.Price, p.Stock, p.ImagesURL,
			p.BrandID, p.ProviderID, p.UpdatedAt,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("update product: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if categoryIDs == nil {
			return nil
		}
		if _, err := q.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, p.ID); err != nil {
			return fmt.Errorf("clear product categories: %w", err)
		}
		return r.replaceCategories(ctx, q, p, categoryIDs)
	})
}

// List devuelve todos los productos con sus categorías.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachCategories(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un producto. Si ya fue facturado devuelve domain.ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) replaceCategories(ctx context.Context, q Querier, p *entity.Product, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	rows, err := q.Query(ctx, `
		INSERT INTO product_categories (product_id, category_id)
		SELECT $1, c.id FROM categories c WHERE c.id = ANY($2)
		RETURNING category_id`, p.ID, categoryIDs)
	if err != nil {
		return fmt.Errorf("insert product categories: %w", err)
	}
	defer rows.Close()
	inserted := 0
	for rows.Next() {
		inserted++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("insert product categories: %w", err)
	}
	if inserted != len(uniqueIDs(categoryIDs)) {
		return domain.ErrInvalidInput
	}
	return nil
}

// attachCategories carga las categorías de todos los productos con una sola consulta.
func (r *ProductRepo) attachCategories(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Product, len(products))
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		p.Categories = []entity.Category{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	rows, err := r.q.Query(ctx, `
		SELECT pc.product_id, c.id, c.name, c.created_at, c.updated_at
		FROM product_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.product_id = ANY($1)
		ORDER BY c.name`, ids)
	if err != nil {
		return fmt.Errorf("get product categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var productID int64
		var c entity.Category
		if err := rows.Scan(&productID, &c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fmt.Errorf("scan product category: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.Categories = append(p.Categories, c)
		}
	}
	return rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var description *string
	if err := row.Scan(
		&p.ID, &p.Name, &description, &p.Price, &p.Stock, &p.ImagesURL,
		&p.BrandID, &p.ProviderID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Description = derefStr(description)
	if p.ImagesURL == nil {
		p.ImagesURL = []string{}
	}
	return &p, nil
}

func uniqueIDs(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
