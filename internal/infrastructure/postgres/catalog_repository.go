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

var (
	_ repository.BrandRepository    = (*BrandRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProviderRepository = (*ProviderRepo)(nil)
)

// BrandRepo implementación de BrandRepository.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador.
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una marca. Nombre duplicado -> domain.ErrDuplicate.
func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	query := `
		INSERT INTO brands (name, logo, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		b.Name, nullIfEmpty(b.Logo), nullIfEmpty(b.Description), b.IsActive, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID.
func (r *BrandRepo) GetByID(ctx context.Context, id int64) (*entity.Brand, error) {
	return r.findOne(ctx, `SELECT id, name, logo, description, is_active, created_at, updated_at FROM brands WHERE id = $1`, id)
}

// GetByName obtiene una marca por nombre exacto.
func (r *BrandRepo) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	return r.findOne(ctx, `SELECT id, name, logo, description, is_active, created_at, updated_at FROM brands WHERE name = $1`, name)
}

// Update actualiza una marca.
func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	query := `
		UPDATE brands SET name = $2, logo = $3, description = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, b.ID, b.Name, nullIfEmpty(b.Logo), nullIfEmpty(b.Description), b.IsActive, b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las marcas.
func (r *BrandRepo) List(ctx context.Context) ([]*entity.Brand, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, logo, description, is_active, created_at, updated_at FROM brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var out []*entity.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Delete elimina una marca. Los productos que la referencian quedan sin marca.
func (r *BrandRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BrandRepo) findOne(ctx context.Context, query string, arg any) (*entity.Brand, error) {
	b, err := scanBrand(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return b, nil
}

func scanBrand(row pgx.Row) (*entity.Brand, error) {
	var b entity.Brand
	var logo, description *string
	if err := row.Scan(&b.ID, &b.Name, &logo, &description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Logo = derefStr(logo)
	b.Description = derefStr(description)
	return &b, nil
}

// CategoryRepo implementación de lectura de categorías.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// ProviderRepo implementación de lectura de proveedores.
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador.
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

const providerColumns = `id, name, email, phone, address, city, province, created_at, updated_at`

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(ctx context.Context, id int64) (*entity.Provider, error) {
	p, err := scanProvider(r.q.QueryRow(ctx, `SELECT `+providerColumns+` FROM providers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return p, nil
}

// List devuelve todos los proveedores.
func (r *ProviderRepo) List(ctx context.Context) ([]*entity.Provider, error) {
	rows, err := r.q.Query(ctx, `SELECT `+providerColumns+` FROM providers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var out []*entity.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProvider(row pgx.Row) (*entity.Provider, error) {
	var p entity.Provider
	var email, phone, address, city, province *string
	if err := row.Scan(&p.ID, &p.Name, &email, &phone, &address, &city, &province, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Email = derefStr(email)
	p.Phone = derefStr(phone)
	p.Address = derefStr(address)
	p.City = derefStr(city)
	p.Province = derefStr(province)
	return &p, nil
}
