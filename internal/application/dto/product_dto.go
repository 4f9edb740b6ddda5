package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock,omitempty"`
	ImagesURL   []string        `json:"imagesURL"`
	BrandID     *int64          `json:"brandId,omitempty"`
	ProviderID  *int64          `json:"providerId,omitempty"`
	CategoryIDs []int64         `json:"categoryIds"`
}

// UpdateProductRequest entrada para actualizar un producto; solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	ImagesURL   []string         `json:"imagesURL"`
	BrandID     *int64           `json:"brandId"`
	ProviderID  *int64           `json:"providerId"`
	CategoryIDs []int64          `json:"categoryIds"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Price       decimal.Decimal    `json:"price"`
	Stock       int                `json:"stock"`
	ImagesURL   []string           `json:"imagesURL"`
	BrandID     *int64             `json:"brandId,omitempty"`
	ProviderID  *int64             `json:"providerId,omitempty"`
	Categories  []CategoryResponse `json:"categories"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
