package repository

import (
	"context"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id int64) (*entity.Brand, error)
	GetByName(ctx context.Context, name string) (*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	List(ctx context.Context) ([]*entity.Brand, error)
	Delete(ctx context.Context, id int64) error
}
