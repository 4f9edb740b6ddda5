package repository

import (
	"context"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product, categoryIDs []int64) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetByIDs resuelve varios productos en una sola consulta; puede devolver menos de los pedidos.
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product, categoryIDs []int64) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
