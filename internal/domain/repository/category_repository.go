package repository

import (
	"context"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

// CategoryRepository puerto de lectura para Category (DIP).
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
