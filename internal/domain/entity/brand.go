package entity

import "time"

// Brand representa una marca de productos. El nombre es único.
type Brand struct {
	ID          int64
	Name        string
	Logo        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
