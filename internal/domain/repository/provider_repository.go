package repository

import (
	"context"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

// ProviderRepository puerto de lectura para Provider (DIP).
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Provider, error)
	List(ctx context.Context) ([]*entity.Provider, error)
}
