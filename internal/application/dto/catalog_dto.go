package dto

import "time"

// CreateBrandRequest body para POST /api/marcas.
type CreateBrandRequest struct {
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// UpdateBrandRequest body para PATCH /api/marcas/:id.
type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// BrandResponse marca en respuestas.
type BrandResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Logo        string    `json:"logo,omitempty"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProviderResponse proveedor en respuestas.
type ProviderResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Province  string    `json:"province,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
