package entity

import "time"

// Category representa una categoría de productos (solo lectura desde la API).
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
