package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su precio y stock actual.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Stock       int
	ImagesURL   []string
	BrandID     *int64
	ProviderID  *int64 // nil si el producto no tiene proveedor asignado
	Categories  []Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryIDs devuelve los IDs de las categorías del producto.
func (p *Product) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}
