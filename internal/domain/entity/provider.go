package entity

import "time"

// Provider representa un proveedor de productos (solo lectura desde la API).
type Provider struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	Province  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
